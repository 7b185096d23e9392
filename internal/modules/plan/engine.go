// README: Option selection and aggregation engine; one per derived plan.
package plan

import (
	"sync"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// Selection is the per-category choice state: either Unselected (zero
// value) or Selected with the chosen option id.
type Selection struct {
	Selected bool   `json:"selected"`
	OptionID string `json:"option_id,omitempty"`
}

// Engine holds one plan's selection state and recomputes the grand total on
// every transition. All methods are safe for concurrent use; a reader never
// observes a total that reflects a partial update.
type Engine struct {
	mu         sync.Mutex
	plan       *Plan
	selections map[pricing.Category]Selection
	gen        uint64
}

func NewEngine(p *Plan) *Engine {
	return &Engine{
		plan:       p,
		selections: make(map[pricing.Category]Selection),
	}
}

// Plan returns the currently installed derivation.
func (e *Engine) Plan() *Plan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plan
}

// StartDerivation marks the beginning of a re-derivation and returns a
// token the result must present to Install. Starting a newer derivation
// invalidates all earlier tokens, so a slow stale lookup can never clobber
// fresher state.
func (e *Engine) StartDerivation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	return e.gen
}

// Install replaces the plan and resets all selections, which must never
// survive a data refresh. It reports false when the token has been
// superseded; the caller discards the stale result.
func (e *Engine) Install(p *Plan, token uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if token != e.gen {
		return false
	}
	e.plan = p
	e.selections = make(map[pricing.Category]Selection)
	return true
}

// Toggle flips one option: selecting it if it is not the category's current
// choice, deselecting it if it is. Categories are independent. The
// recomputed totals are returned atomically with the transition.
func (e *Engine) Toggle(optionID string) (GrandTotal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	opt, ok := e.findOption(optionID)
	if !ok {
		return GrandTotal{}, ErrUnknownOption
	}

	sel := e.selections[opt.Category]
	if sel.Selected && sel.OptionID == optionID {
		e.selections[opt.Category] = Selection{}
	} else {
		e.selections[opt.Category] = Selection{Selected: true, OptionID: optionID}
	}
	return e.totalsLocked(), nil
}

// Totals recomputes the grand total from the installed plan and current
// selections. Nothing is cached, so the total can never go stale.
func (e *Engine) Totals() GrandTotal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalsLocked()
}

// Selections returns a copy of the per-category selection state.
func (e *Engine) Selections() map[pricing.Category]Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[pricing.Category]Selection, len(e.selections))
	for k, v := range e.selections {
		out[k] = v
	}
	return out
}

func (e *Engine) totalsLocked() GrandTotal {
	housing := e.plan.Housing.Amount
	travel := e.contribution(pricing.CategoryTravel, e.plan.Travel, true)
	truck := e.contribution(pricing.CategoryMovingTruck, e.plan.MovingTruck, false)
	help := e.contribution(pricing.CategoryMovingHelp, e.plan.MovingHelp, true)

	return GrandTotal{
		Housing:     types.USD(housing),
		Travel:      types.USD(travel),
		MovingTruck: types.USD(truck),
		MovingHelp:  types.USD(help),
		Total:       types.USD(housing + travel + truck + help),
	}
}

// contribution computes one category's share of the total. Unselected
// contributes the default (first) option when the category carries a base
// cost, and zero for opt-in line items like the moving truck. An inactive
// category (no options) always contributes zero.
func (e *Engine) contribution(cat pricing.Category, opts []pricing.PricedOption, baseWhenUnselected bool) int64 {
	if len(opts) == 0 {
		return 0
	}
	sel := e.selections[cat]
	if !sel.Selected {
		if baseWhenUnselected {
			return opts[0].Cost.Amount
		}
		return 0
	}
	for _, o := range opts {
		if o.ID == sel.OptionID {
			return o.Cost.Amount
		}
	}
	// Selection references an option that no longer exists; treat as
	// unselected rather than contributing a phantom amount.
	if baseWhenUnselected {
		return opts[0].Cost.Amount
	}
	return 0
}

func (e *Engine) findOption(optionID string) (pricing.PricedOption, bool) {
	for _, list := range [][]pricing.PricedOption{e.plan.Travel, e.plan.MovingTruck, e.plan.MovingHelp} {
		for _, o := range list {
			if o.ID == optionID {
				return o, true
			}
		}
	}
	return pricing.PricedOption{}, false
}
