// README: Route resolution through the Google Directions API.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"nexaride/internal/modules/pricing"
)

// RouteService measures driving routes with Google Directions.
type RouteService struct {
	client *maps.Client
	opts   Options
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string, opts Options) (*RouteService, error) {
	client, err := newClient(apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &RouteService{client: client, opts: opts}, nil
}

// Resolve returns the driving distance and duration from pickup to destination via
// the stops in order. Every failure wraps pricing.ErrRoutingFailure.
func (s *RouteService) Resolve(ctx context.Context, pickup, destination string, stops []string) (pricing.RouteMetrics, error) {
	r := &maps.DirectionsRequest{
		Origin:      pickup,
		Destination: destination,
		Waypoints:   stops,
		Mode:        maps.TravelModeDriving,
		Units:       maps.UnitsMetric,
		Language:    s.opts.language(),
		Region:      s.opts.region(),
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return pricing.RouteMetrics{}, fmt.Errorf("%w: maps api error: %v", pricing.ErrRoutingFailure, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return pricing.RouteMetrics{}, fmt.Errorf("%w: no route found", pricing.ErrRoutingFailure)
	}

	var meters int
	var seconds float64
	for _, leg := range routes[0].Legs {
		if leg == nil {
			return pricing.RouteMetrics{}, fmt.Errorf("%w: empty leg in response", pricing.ErrRoutingFailure)
		}
		meters += leg.Distance.Meters
		seconds += leg.Duration.Seconds()
	}
	if meters < 0 || seconds < 0 {
		return pricing.RouteMetrics{}, fmt.Errorf("%w: negative leg totals", pricing.ErrRoutingFailure)
	}

	return pricing.RouteMetrics{
		DistanceKm:      float64(meters) / 1000,
		DurationMinutes: seconds / 60,
		WaypointCount:   len(stops),
		Source:          pricing.SourceRouted,
	}, nil
}
