package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

// RouteService handles interactions with the Google Maps API: geocoding of
// place names and driving-route lookups between them.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Geocode resolves a free-form place name ("Madison, WI") to coordinates.
func (s *RouteService) Geocode(ctx context.Context, place string) (types.Point, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: place,
		Region:  "US", // bias results to the United States
	})
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("no geocoding result for %q", place)
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// DrivingDistanceMeters returns the length of the driving route from origin
// to destination, summed over all legs.
func (s *RouteService) DrivingDistanceMeters(ctx context.Context, origin, destination string) (float64, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      "US",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("no route found")
	}

	var meters float64
	for _, leg := range routes[0].Legs {
		meters += float64(leg.Distance.Meters)
	}
	return meters, nil
}
