package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
)

func ym(year int, month time.Month) *plan.YearMonth {
	return &plan.YearMonth{Year: year, Month: month}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		q    plan.Query
		want string
	}{
		{
			name: "plane with moving help",
			q: plan.Query{
				Origin:          "Madison, WI",
				Destination:     "Seattle, WA",
				Start:           ym(2025, time.June),
				End:             ym(2025, time.August),
				Mode:            pricing.ModePlane,
				WantsMovingHelp: true,
				BudgetPerMonth:  1400,
			},
			want: "/madisonwi/seattlewa/june/august/01/000001/1400",
		},
		{
			name: "truck flag forces the transport bit",
			q: plan.Query{
				Origin:           "Austin",
				Destination:      "Denver",
				Mode:             pricing.ModePlane,
				NeedsMovingTruck: true,
				BudgetPerMonth:   900,
			},
			want: "/austin/denver/unknown/unknown/10/001000/900",
		},
		{
			name: "no transport selected",
			q: plan.Query{
				Origin:         "Boston",
				Destination:    "Chicago",
				Start:          ym(2025, time.November),
				End:            ym(2026, time.February),
				BudgetPerMonth: 2000,
			},
			want: "/boston/chicago/november/february/00/000000/2000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.q); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	q := plan.Query{
		Origin:          "madisonwi",
		Destination:     "seattlewa",
		Start:           ym(2025, time.June),
		End:             ym(2025, time.August),
		Mode:            pricing.ModeTrainBus,
		WantsMovingHelp: true,
		BudgetPerMonth:  1400,
	}
	got, err := Decode(Encode(q), 2025)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Origin != q.Origin || got.Destination != q.Destination {
		t.Errorf("cities: got %q->%q", got.Origin, got.Destination)
	}
	if got.Mode != q.Mode {
		t.Errorf("mode = %q, want %q", got.Mode, q.Mode)
	}
	if !got.WantsMovingHelp || got.NeedsMovingTruck {
		t.Errorf("flags = truck:%v help:%v", got.NeedsMovingTruck, got.WantsMovingHelp)
	}
	if got.Start == nil || *got.Start != *q.Start || got.End == nil || *got.End != *q.End {
		t.Errorf("months: got %+v..%+v", got.Start, got.End)
	}
	if got.BudgetPerMonth != 1400 {
		t.Errorf("budget = %d", got.BudgetPerMonth)
	}
}

func TestDecode_EndMonthRollsIntoNextYear(t *testing.T) {
	got, err := Decode("/boston/chicago/november/february/00/000000/2000", 2025)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Start == nil || got.Start.Year != 2025 || got.Start.Month != time.November {
		t.Errorf("start = %+v, want november 2025", got.Start)
	}
	if got.End == nil || got.End.Year != 2026 || got.End.Month != time.February {
		t.Errorf("end = %+v, want february 2026", got.End)
	}
	if got.DurationMonths() != 4 {
		t.Errorf("DurationMonths() = %d, want 4", got.DurationMonths())
	}
}

func TestDecode_UnknownMonths(t *testing.T) {
	got, err := Decode("/boston/chicago/unknown/unknown/00/000010/1000", 2025)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Start != nil || got.End != nil {
		t.Errorf("unknown months must decode to nil, got %+v..%+v", got.Start, got.End)
	}
	if got.Mode != pricing.ModeTrainBus {
		t.Errorf("mode = %q, want train_bus", got.Mode)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"too few segments", "/boston/chicago/june/august/01/000001"},
		{"flags too wide", "/a/b/june/august/011/000001/1000"},
		{"flags non-bit", "/a/b/june/august/0x/000001/1000"},
		{"transport too narrow", "/a/b/june/august/01/00001/1000"},
		{"transport two bits set", "/a/b/june/august/01/010010/1000"},
		{"bad month", "/a/b/junk/august/01/000001/1000"},
		{"capitalized month", "/a/b/June/august/01/000001/1000"},
		{"non-numeric budget", "/a/b/june/august/01/000001/lots"},
		{"empty city", "/a//june/august/01/000001/1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.path, 2025); !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(%q) = %v, want ErrMalformed", tt.path, err)
			}
		})
	}
}
