// README: Transport modes, cost categories, and priced option definitions.
package pricing

import (
	"strings"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// Mode is one of the six mutually-exclusive transport categories a user can
// select. The needs-moving-truck flag supersedes whichever mode was chosen.
type Mode string

const (
	ModeUnknown          Mode = ""
	ModeHaveArrangements Mode = "have_arrangements"
	ModeDriveOwnCar      Mode = "drive_own_car"
	ModeMovingTruck      Mode = "moving_truck"
	ModeRentalCar        Mode = "rental_car"
	ModeTrainBus         Mode = "train_bus"
	ModePlane            Mode = "plane"
)

// TransportBitOrder is the fixed wire order of the six-bit transport segment.
// It must never be reordered: the path codec depends on these positions.
var TransportBitOrder = [6]Mode{
	ModeHaveArrangements,
	ModeDriveOwnCar,
	ModeMovingTruck,
	ModeRentalCar,
	ModeTrainBus,
	ModePlane,
}

// Category groups priced options into the three selectable cost buckets.
// Housing is a fourth, non-selectable amount handled by the plan engine.
type Category string

const (
	CategoryTravel      Category = "travel"
	CategoryMovingTruck Category = "moving_truck"
	CategoryMovingHelp  Category = "moving_help"
)

// VehicleClass is one of the five rental/ownership vehicle sizes.
type VehicleClass string

const (
	ClassCar     VehicleClass = "car"
	ClassMinivan VehicleClass = "minivan"
	ClassSUV     VehicleClass = "suv"
	ClassTruck   VehicleClass = "truck"
	ClassVan     VehicleClass = "van"
)

// VehicleRate holds per-mile operating costs in dollars.
type VehicleRate struct {
	FuelPerMile        float64
	MaintenancePerMile float64
}

// PerMile is the combined operating cost per mile.
func (r VehicleRate) PerMile() float64 {
	return r.FuelPerMile + r.MaintenancePerMile
}

// FlightBand is one row of the flight pricing table: a carrier's
// dollars-per-mile multiplier over a contiguous distance interval.
// MaxMiles is inclusive. A trip distance may match several rows (multiple
// carriers serving the same band) and all matches are surfaced.
type FlightBand struct {
	MinMiles   float64
	MaxMiles   float64
	Carrier    string
	Multiplier float64
}

// PricedOption is one priced, independently selectable line item surfaced to
// the user within a cost category.
type PricedOption struct {
	ID         string      `json:"id"`
	Category   Category    `json:"category"`
	Label      string      `json:"label"`
	Cost       types.Money `json:"cost"`
	Selectable bool        `json:"selectable"`
}

// OptionID builds a stable identifier like "travel:plane:delta-air-lines".
// Stable IDs let selection state reference options across responses.
func OptionID(parts ...string) string {
	slugged := make([]string, 0, len(parts))
	for _, p := range parts {
		slugged = append(slugged, slug(p))
	}
	return strings.Join(slugged, ":")
}

func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(s) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_':
			b.WriteRune(c)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
