// README: Housing cost model; projects total rent over the stay duration.
package housing

import (
	"math"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// fallbackWholeStay is the flat whole-stay estimate used when no listing
// carries a usable price. A documented constant, not a market rate.
const fallbackWholeStay = 3200

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ProjectedTotal averages the valid listing prices and scales by the stay
// duration in months. A single month's rent is not the cost of the move;
// the projection must cover how long the person actually stays.
//
// The bool result reports whether the flat fallback was substituted because
// no listing had a valid positive price.
func (s *Service) ProjectedTotal(listings []Listing, months int) (types.Money, bool) {
	if months < 1 {
		months = 1
	}

	var sum float64
	var n int
	for _, l := range listings {
		if l.Price > 0 {
			sum += l.Price
			n++
		}
	}
	if n == 0 {
		return types.USD(fallbackWholeStay), true
	}

	avg := sum / float64(n)
	return types.USD(int64(math.Round(avg * float64(months)))), false
}
