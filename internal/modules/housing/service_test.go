package housing

import "testing"

func TestProjectedTotal(t *testing.T) {
	tests := []struct {
		name         string
		listings     []Listing
		months       int
		want         int64
		wantFallback bool
	}{
		{
			name: "average times duration",
			listings: []Listing{
				{Price: 1200},
				{Price: 1400},
				{Price: 1000},
			},
			months: 3,
			want:   3600, // avg 1200 * 3
		},
		{
			name: "invalid prices excluded",
			listings: []Listing{
				{Price: 1500},
				{Price: 0},
				{Price: -10},
			},
			months: 2,
			want:   3000,
		},
		{
			name:         "no listings",
			listings:     nil,
			months:       3,
			want:         3200,
			wantFallback: true,
		},
		{
			name:         "only invalid prices",
			listings:     []Listing{{Price: 0}},
			months:       6,
			want:         3200,
			wantFallback: true,
		},
		{
			name:     "duration clamped to one month",
			listings: []Listing{{Price: 1300}},
			months:   0,
			want:     1300,
		},
		{
			name:     "rounding to nearest dollar",
			listings: []Listing{{Price: 1000}, {Price: 1001}, {Price: 1001}},
			months:   1,
			want:     1001, // avg 1000.666...
		},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fb := svc.ProjectedTotal(tt.listings, tt.months)
			if got.Amount != tt.want {
				t.Errorf("ProjectedTotal() = %d, want %d", got.Amount, tt.want)
			}
			if fb != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", fb, tt.wantFallback)
			}
		})
	}
}

// Housing total must scale linearly with stay duration for a fixed listing set.
func TestProjectedTotal_LinearInDuration(t *testing.T) {
	svc := NewService()
	listings := []Listing{{Price: 1100}, {Price: 1300}}

	one, _ := svc.ProjectedTotal(listings, 1)
	for months := 2; months <= 12; months++ {
		got, _ := svc.ProjectedTotal(listings, months)
		if got.Amount != one.Amount*int64(months) {
			t.Errorf("%d months = %d, want %d", months, got.Amount, one.Amount*int64(months))
		}
	}
}

func TestSplitCityState(t *testing.T) {
	city, state := splitCityState("Seattle, WA")
	if city != "seattle" || state != "WA" {
		t.Errorf("got (%q, %q)", city, state)
	}
	city, state = splitCityState("Madison")
	if city != "madison" || state != "" {
		t.Errorf("got (%q, %q)", city, state)
	}
}
