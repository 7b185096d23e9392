// README: Plan service; one derivation pass per query, feeding the engine.
package plan

import (
	"context"
	"log"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/distance"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/housing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

const maxListings = 10

// DistanceResolver resolves two place names into trip lengths.
type DistanceResolver interface {
	Resolve(ctx context.Context, origin, destination string, class distance.Class) (distance.Result, error)
}

// ListingSource returns candidate rentals under a budget ceiling.
type ListingSource interface {
	ListByCity(ctx context.Context, city string, maxPrice int64, limit int) ([]housing.Listing, error)
}

// HelpSource prices the moving-help category.
type HelpSource interface {
	HelpOptions() ([]pricing.PricedOption, bool)
}

type Service struct {
	resolver DistanceResolver
	pricing  *pricing.Service
	housing  *housing.Service
	listings ListingSource
	movers   HelpSource
	store    *Store
}

func NewService(resolver DistanceResolver, pricingSvc *pricing.Service, housingSvc *housing.Service, listings ListingSource, movers HelpSource, store *Store) *Service {
	return &Service{
		resolver: resolver,
		pricing:  pricingSvc,
		housing:  housingSvc,
		listings: listings,
		movers:   movers,
		store:    store,
	}
}

// Derive runs one full derivation pass for a fresh query and registers the
// resulting plan under a new id.
func (s *Service) Derive(ctx context.Context, q Query) (*Engine, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	p, err := s.derive(ctx, q)
	if err != nil {
		return nil, err
	}
	p.ID = newID()
	eng := NewEngine(p)
	s.store.Put(p.ID, eng)
	return eng, nil
}

// Rederive replaces an existing plan's derivation after a query edit. If a
// newer edit starts before this one finishes, the stale result is discarded
// and ErrSuperseded is returned; current state is never a merge of two
// derivations.
func (s *Service) Rederive(ctx context.Context, id types.ID, q Query) (*Engine, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	eng, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	token := eng.StartDerivation()
	p, err := s.derive(ctx, q)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if !eng.Install(p, token) {
		return eng, ErrSuperseded
	}
	return eng, nil
}

// Get looks up a live plan engine.
func (s *Service) Get(id types.ID) (*Engine, error) {
	eng, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return eng, nil
}

// derive is the single pass from query to priced plan: distance, then mode
// and housing cost models, then assembly. Every upstream failure degrades
// to a flat estimate; nothing here fails the request.
func (s *Service) derive(ctx context.Context, q Query) (*Plan, error) {
	res := s.resolveDistance(ctx, q)

	p := &Plan{
		Query:     q,
		Distance:  res,
		CreatedAt: time.Now(),
	}

	if q.NeedsTruck() {
		// Truck supersedes: the user drives the rented vehicle, so no
		// separate travel charge applies.
		opt, fb := s.pricing.TruckOption(res.DrivingMiles)
		p.MovingTruck = []pricing.PricedOption{opt}
		p.Fallback.MovingTruck = fb
	} else {
		opts, fb := s.pricing.TravelOptions(q.Mode, milesFor(q.Mode, res))
		p.Travel = opts
		p.Fallback.Travel = fb
	}

	if q.WantsMovingHelp {
		opts, fb := s.movers.HelpOptions()
		p.MovingHelp = opts
		p.Fallback.MovingHelp = fb
	}

	listings, err := s.listings.ListByCity(ctx, q.Destination, q.BudgetPerMonth, maxListings)
	if err != nil {
		log.Printf("plan: listings lookup for %q failed: %v", q.Destination, err)
		listings = nil
	}
	p.Listings = listings
	p.Housing, p.Fallback.Housing = s.housing.ProjectedTotal(listings, q.DurationMonths())

	return p, nil
}

// resolveDistance picks the lookup class for the query's mode and treats
// every resolver failure as "distance unknown".
func (s *Service) resolveDistance(ctx context.Context, q Query) distance.Result {
	if !needsDistance(q) {
		return distance.Result{}
	}
	class := distance.ClassDriving
	if q.Mode == pricing.ModePlane && !q.NeedsTruck() {
		class = distance.ClassFlight
	}
	res, err := s.resolver.Resolve(ctx, q.Origin, q.Destination, class)
	if err != nil {
		log.Printf("plan: distance resolution unavailable: %v", err)
		return distance.Result{}
	}
	return res
}

// needsDistance reports whether any cost model for this query consumes a
// trip length. Have-arrangements and no-selection are flat estimates and
// skip the external lookup entirely.
func needsDistance(q Query) bool {
	if q.NeedsTruck() {
		return true
	}
	switch q.Mode {
	case pricing.ModeDriveOwnCar, pricing.ModeRentalCar, pricing.ModeTrainBus, pricing.ModePlane:
		return true
	}
	return false
}

// milesFor fixes the distance-signal priority per mode: the plane model
// prefers the straight-line length, every driving-class model prefers the
// routed length, and each falls back to the other signal when its preferred
// one is missing.
func milesFor(mode pricing.Mode, res distance.Result) *float64 {
	if mode == pricing.ModePlane {
		if res.StraightLineMiles != nil {
			return res.StraightLineMiles
		}
		return res.DrivingMiles
	}
	if res.DrivingMiles != nil {
		return res.DrivingMiles
	}
	return res.StraightLineMiles
}
