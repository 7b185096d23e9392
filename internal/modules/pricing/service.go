// README: Mode cost models; pure functions from (mode, distance) to priced options.
package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

type Service struct {
	bands []FlightBand
}

// NewService builds the cost models over a loaded flight pricing table.
// bands may be empty, in which case every flight estimate uses the flat
// fallback.
func NewService(bands []FlightBand) *Service {
	return &Service{bands: bands}
}

// TravelOptions prices the general travel category for the selected mode.
//
// miles is the resolved trip distance (driving or straight-line, whichever
// the mode calls for); nil means no distance signal was available. The bool
// result reports whether a flat fallback was substituted for a distance- or
// table-based computation.
//
// The first option in the returned slice is the category default: the
// cheapest carrier for flights, the "car" class for rentals, and the single
// option for every other mode. ModeMovingTruck returns no options because
// the truck charge supersedes general travel entirely.
func (s *Service) TravelOptions(mode Mode, miles *float64) ([]PricedOption, bool) {
	switch mode {
	case ModeDriveOwnCar:
		if miles == nil {
			return []PricedOption{travelOption("own-car", "Drive your own car", fallbackOwnCar)}, true
		}
		cost := roundDollars(*miles * vehicleRates[ClassCar].PerMile())
		return []PricedOption{travelOption("own-car", "Drive your own car", cost)}, false

	case ModeRentalCar:
		if miles == nil {
			return []PricedOption{travelOption("rental-car", "Rental car", fallbackRentalCar)}, true
		}
		opts := make([]PricedOption, 0, len(vehicleClassOrder))
		for _, class := range vehicleClassOrder {
			cost := roundDollars(*miles * vehicleRates[class].PerMile())
			opts = append(opts, PricedOption{
				ID:         OptionID("travel", "rental-car", string(class)),
				Category:   CategoryTravel,
				Label:      fmt.Sprintf("Rental (%s)", class),
				Cost:       types.USD(cost),
				Selectable: true,
			})
		}
		return opts, false

	case ModeTrainBus:
		if miles == nil {
			return []PricedOption{travelOption("train-bus", "Train or bus", fallbackTrainBus)}, true
		}
		cost := roundDollars(*miles * busRateByBucket[busBucket(*miles)])
		return []PricedOption{travelOption("train-bus", "Train or bus", cost)}, false

	case ModePlane:
		if miles == nil {
			return []PricedOption{travelOption("plane", "Flight", fallbackPlane)}, true
		}
		matched := s.matchBands(*miles)
		if len(matched) == 0 {
			// No carrier serves this band: unavailable, not zero-cost.
			return []PricedOption{travelOption("plane", "Flight", fallbackPlane)}, true
		}
		opts := make([]PricedOption, 0, len(matched))
		for _, band := range matched {
			opts = append(opts, PricedOption{
				ID:         OptionID("travel", "plane", band.Carrier),
				Category:   CategoryTravel,
				Label:      band.Carrier,
				Cost:       types.USD(roundDollars(*miles * band.Multiplier)),
				Selectable: true,
			})
		}
		// Cheapest first: the head of the list is the default base cost
		// until the user explicitly picks a carrier.
		sort.SliceStable(opts, func(i, j int) bool { return opts[i].Cost.Amount < opts[j].Cost.Amount })
		return opts, false

	case ModeMovingTruck:
		return nil, false

	default:
		// Have-arrangements or no selection: nominal own-transport estimate.
		return []PricedOption{travelOption("arrangements", "Own arrangements", fallbackArrangements)}, false
	}
}

// TruckOption prices the moving-truck line item from the driving distance.
func (s *Service) TruckOption(miles *float64) (PricedOption, bool) {
	opt := PricedOption{
		ID:         OptionID("moving_truck", "truck"),
		Category:   CategoryMovingTruck,
		Label:      "Moving truck",
		Selectable: true,
	}
	if miles == nil {
		opt.Cost = types.USD(fallbackMovingTruck)
		return opt, true
	}
	opt.Cost = types.USD(roundDollars(*miles * vehicleRates[ClassTruck].PerMile()))
	return opt, false
}

// matchBands returns every table row whose interval covers the distance.
func (s *Service) matchBands(miles float64) []FlightBand {
	var matched []FlightBand
	for _, b := range s.bands {
		if miles >= b.MinMiles && miles <= b.MaxMiles {
			matched = append(matched, b)
		}
	}
	return matched
}

func travelOption(key, label string, cost int64) PricedOption {
	return PricedOption{
		ID:         OptionID("travel", key),
		Category:   CategoryTravel,
		Label:      label,
		Cost:       types.USD(cost),
		Selectable: true,
	}
}

func roundDollars(v float64) int64 {
	return int64(math.Round(v))
}
