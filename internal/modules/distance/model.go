// README: Distance result and mode-class definitions.
package distance

// Class separates driving-class trips (routed on roads) from flight-class
// trips (great-circle between the geocoded endpoints).
type Class string

const (
	ClassDriving Class = "driving"
	ClassFlight  Class = "flight"
)

// Result holds resolved trip lengths in miles, rounded to one decimal.
// Exactly one field is populated depending on the class; both are nil when
// geocoding or routing failed and the caller must fall back to flat
// estimates rather than treating the trip as zero-length.
type Result struct {
	DrivingMiles      *float64 `json:"driving_miles"`
	StraightLineMiles *float64 `json:"straight_line_miles"`
}

// Known reports whether any distance signal is available.
func (r Result) Known() bool {
	return r.DrivingMiles != nil || r.StraightLineMiles != nil
}
