// README: Distance resolver service; geocodes endpoints concurrently and
// computes driving or great-circle trip length.
package distance

import (
	"context"
	"errors"
	"log"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (types.Point, error)
}

// Router returns the driving-path length between two place names.
type Router interface {
	DrivingDistanceMeters(ctx context.Context, origin, destination string) (float64, error)
}

// ErrUnavailable is returned when no lookup backend is configured at all
// (e.g. the Maps API key is missing). Callers degrade to flat estimates.
var ErrUnavailable = errors.New("distance: lookup backend unavailable")

type Service struct {
	geo    Geocoder
	router Router
	cache  *Store
}

// NewService wires a resolver. geo and router may be the same value (the
// maps.RouteService implements both) and cache may be nil.
func NewService(geo Geocoder, router Router, cache *Store) *Service {
	return &Service{geo: geo, router: router, cache: cache}
}

// Resolve turns two place names into a Result for the given class.
//
// Failure is non-fatal by contract: an unknown place or upstream outage
// yields Result{nil, nil} with a nil error, and downstream cost models fall
// back to their flat estimates. Only a missing backend returns an error.
func (s *Service) Resolve(ctx context.Context, origin, destination string, class Class) (Result, error) {
	if s.geo == nil {
		return Result{}, ErrUnavailable
	}

	if res, err := s.cache.Get(ctx, origin, destination, class); err == nil {
		return res, nil
	} else if err != errCacheMiss {
		log.Printf("distance: cache read failed: %v", err)
	}

	// Geocode the two endpoints concurrently; they are independent lookups.
	type geoRes struct {
		pt  types.Point
		err error
	}
	chO := make(chan geoRes, 1)
	chD := make(chan geoRes, 1)
	go func() {
		pt, err := s.geo.Geocode(ctx, origin)
		chO <- geoRes{pt: pt, err: err}
	}()
	go func() {
		pt, err := s.geo.Geocode(ctx, destination)
		chD <- geoRes{pt: pt, err: err}
	}()
	ro, rd := <-chO, <-chD

	if ro.err != nil || rd.err != nil {
		if ro.err != nil {
			log.Printf("distance: geocode %q failed: %v", origin, ro.err)
		}
		if rd.err != nil {
			log.Printf("distance: geocode %q failed: %v", destination, rd.err)
		}
		return Result{}, nil
	}

	var res Result
	switch class {
	case ClassFlight:
		miles := round1(haversineMiles(ro.pt.Lat, ro.pt.Lng, rd.pt.Lat, rd.pt.Lng))
		res.StraightLineMiles = &miles
	default:
		if s.router == nil {
			return Result{}, nil
		}
		meters, err := s.router.DrivingDistanceMeters(ctx, origin, destination)
		if err != nil {
			log.Printf("distance: route %q -> %q failed: %v", origin, destination, err)
			return Result{}, nil
		}
		miles := round1(meters / metersPerMile)
		res.DrivingMiles = &miles
	}

	if err := s.cache.Put(ctx, origin, destination, class, res); err != nil {
		log.Printf("distance: cache write failed: %v", err)
	}
	return res, nil
}
