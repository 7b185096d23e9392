// README: Move query, derived plan, and aggregation result definitions.
package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/distance"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/housing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

var (
	ErrInvalidQuery  = errors.New("invalid move query")
	ErrNotFound      = errors.New("plan not found")
	ErrUnknownOption = errors.New("unknown option id")
	ErrSuperseded    = errors.New("derivation superseded by a newer query")
)

// maxBudgetPerMonth bounds the housing budget a query may carry. Anything
// above this is a malformed request, not a plausible rent ceiling.
const maxBudgetPerMonth = 100000

// YearMonth is a calendar year-month pair.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// index flattens a YearMonth onto a single month axis for comparisons.
func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Query is the user's move request: where from, where to, for how long, how
// they travel, and what they can pay for housing. Nil months mean the user
// gave no date constraint.
type Query struct {
	Origin           string       `json:"origin"`
	Destination      string       `json:"destination"`
	Start            *YearMonth   `json:"start_month"`
	End              *YearMonth   `json:"end_month"`
	Mode             pricing.Mode `json:"transport_mode"`
	NeedsMovingTruck bool         `json:"needs_moving_truck"`
	WantsMovingHelp  bool         `json:"wants_moving_help"`
	BudgetPerMonth   int64        `json:"budget_per_month"`
}

// NeedsTruck reports whether the truck charge supersedes general travel,
// either via the explicit flag or the moving-truck transport mode.
func (q Query) NeedsTruck() bool {
	return q.NeedsMovingTruck || q.Mode == pricing.ModeMovingTruck
}

// DurationMonths is the inclusive stay length: (endY-startY)*12 +
// (endM-startM) + 1, clamped to at least one month. Unknown dates count as
// a single month.
func (q Query) DurationMonths() int {
	if q.Start == nil || q.End == nil {
		return 1
	}
	months := q.End.index() - q.Start.index() + 1
	if months < 1 {
		return 1
	}
	return months
}

// Validate rejects malformed queries before any derivation begins. A bad
// query is never silently coerced into a priced estimate.
func (q Query) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: missing origin", ErrInvalidQuery)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: missing destination", ErrInvalidQuery)
	}
	if q.Start != nil && q.End != nil && q.End.index() < q.Start.index() {
		return fmt.Errorf("%w: end month before start month", ErrInvalidQuery)
	}
	if q.BudgetPerMonth < 1 || q.BudgetPerMonth > maxBudgetPerMonth {
		return fmt.Errorf("%w: budget out of range", ErrInvalidQuery)
	}
	return nil
}

// FallbackFlags records, per category, whether a flat estimate was
// substituted for a computed one so the boundary layer can warn the user.
type FallbackFlags struct {
	Housing     bool `json:"housing"`
	Travel      bool `json:"travel"`
	MovingTruck bool `json:"moving_truck"`
	MovingHelp  bool `json:"moving_help"`
}

// Plan is one derivation pass over a Query: resolved distance, the priced
// options per category, the projected housing total, and the degradation
// flags. Plans are immutable once installed; selection state lives in the
// Engine.
type Plan struct {
	ID          types.ID               `json:"plan_id"`
	Query       Query                  `json:"request"`
	Distance    distance.Result        `json:"distance"`
	Listings    []housing.Listing      `json:"listings"`
	Housing     types.Money            `json:"housing_total"`
	Travel      []pricing.PricedOption `json:"travel_options"`
	MovingTruck []pricing.PricedOption `json:"moving_truck_options"`
	MovingHelp  []pricing.PricedOption `json:"moving_help_options"`
	Fallback    FallbackFlags          `json:"used_fallback"`
	CreatedAt   time.Time              `json:"created_at"`
}

// GrandTotal is the synchronous aggregation over the four cost categories.
type GrandTotal struct {
	Housing     types.Money `json:"housing"`
	Travel      types.Money `json:"travel"`
	MovingTruck types.Money `json:"moving_truck"`
	MovingHelp  types.Money `json:"moving_help"`
	Total       types.Money `json:"total"`
}
