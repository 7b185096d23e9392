package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
)

func ym(year int, month time.Month) *YearMonth {
	return &YearMonth{Year: year, Month: month}
}

func TestQuery_DurationMonths(t *testing.T) {
	tests := []struct {
		name  string
		start *YearMonth
		end   *YearMonth
		want  int
	}{
		{"three months inclusive", ym(2025, time.June), ym(2025, time.August), 3},
		{"single month", ym(2025, time.June), ym(2025, time.June), 1},
		{"across year boundary", ym(2025, time.November), ym(2026, time.February), 4},
		{"full year", ym(2025, time.January), ym(2025, time.December), 12},
		{"no dates", nil, nil, 1},
		{"missing end", ym(2025, time.June), nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Start: tt.start, End: tt.end}
			if got := q.DurationMonths(); got != tt.want {
				t.Errorf("DurationMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuery_Validate(t *testing.T) {
	valid := Query{
		Origin:         "Madison, WI",
		Destination:    "Seattle, WA",
		Start:          ym(2025, time.June),
		End:            ym(2025, time.August),
		Mode:           pricing.ModePlane,
		BudgetPerMonth: 1400,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Query)
	}{
		{"missing origin", func(q *Query) { q.Origin = "" }},
		{"missing destination", func(q *Query) { q.Destination = "" }},
		{"end before start", func(q *Query) { q.End = ym(2025, time.May) }},
		{"zero budget", func(q *Query) { q.BudgetPerMonth = 0 }},
		{"negative budget", func(q *Query) { q.BudgetPerMonth = -5 }},
		{"absurd budget", func(q *Query) { q.BudgetPerMonth = maxBudgetPerMonth + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			if err := q.Validate(); !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("Validate() = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestQuery_NeedsTruck(t *testing.T) {
	if !(Query{NeedsMovingTruck: true, Mode: pricing.ModePlane}).NeedsTruck() {
		t.Errorf("flag must force truck")
	}
	if !(Query{Mode: pricing.ModeMovingTruck}).NeedsTruck() {
		t.Errorf("truck mode must count as truck")
	}
	if (Query{Mode: pricing.ModePlane}).NeedsTruck() {
		t.Errorf("plane query must not need a truck")
	}
}
