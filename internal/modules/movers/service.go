// README: Moving-help options; turns the provider catalog into priced line items.
package movers

import (
	"sort"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// fallbackMovingHelp is the flat estimate substituted when the provider
// catalog is empty. A documented constant, never a live price.
const fallbackMovingHelp = 250

type Service struct {
	providers []Provider
}

// NewService builds the moving-help model over a provider catalog; pass
// DefaultProviders for the stock demo set.
func NewService(providers []Provider) *Service {
	return &Service{providers: providers}
}

// HelpOptions returns one priced option per provider, cheapest first so the
// head of the list is the category default. An empty catalog degrades to a
// single flat-estimate option with the fallback flag set.
func (s *Service) HelpOptions() ([]pricing.PricedOption, bool) {
	if len(s.providers) == 0 {
		return []pricing.PricedOption{{
			ID:         "moving_help:estimate",
			Category:   pricing.CategoryMovingHelp,
			Label:      "Moving help",
			Cost:       types.USD(fallbackMovingHelp),
			Selectable: true,
		}}, true
	}

	opts := make([]pricing.PricedOption, 0, len(s.providers))
	for _, p := range s.providers {
		opts = append(opts, pricing.PricedOption{
			ID:         pricing.OptionID("moving_help", p.Name),
			Category:   pricing.CategoryMovingHelp,
			Label:      p.Name,
			Cost:       types.USD(p.EstimatedTotal),
			Selectable: true,
		})
	}
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Cost.Amount < opts[j].Cost.Amount })
	return opts, false
}
