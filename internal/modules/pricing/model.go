// README: Pricing domain types (route metrics, airports, vehicle classes, rate table).
package pricing

import "errors"

var (
	// ErrInvalidMetrics marks route metrics that should never reach the calculator
	// (negative or non-finite distance/duration, unknown airport code).
	ErrInvalidMetrics = errors.New("invalid route metrics")
	// ErrRoutingFailure is returned by route resolvers when the provider errored,
	// timed out or answered with something unusable.
	ErrRoutingFailure = errors.New("routing failure")
)

// Source tells where distance and duration came from.
type Source string

const (
	SourceRouted    Source = "routed"
	SourceEstimated Source = "estimated"
)

// RouteMetrics describes a trip. Distance and duration are always set, only their
// provenance changes with Source.
type RouteMetrics struct {
	DistanceKm      float64
	DurationMinutes float64
	WaypointCount   int
	IsAirportRoute  bool
	AirportCode     string
	Source          Source
}

// Airport is a fixed-price airport transfer entry.
type Airport struct {
	Code         string
	DisplayName  string
	Aliases      []string
	BasePriceEur int
}

// VehicleClass is one tier of the fleet. Capacity is the closed range [MinPassengers, MaxPassengers].
type VehicleClass struct {
	ID              string
	DisplayName     string
	MinPassengers   int
	MaxPassengers   int
	PriceMultiplier float64
	Features        []string
}

// Accepts reports whether the class can carry the given number of passengers.
func (c VehicleClass) Accepts(passengers int) bool {
	return passengers >= c.MinPassengers && passengers <= c.MaxPassengers
}

// VehicleOffer is a priced vehicle class for one quote.
type VehicleOffer struct {
	VehicleClassID string
	Price          int
	Eligible       bool
}

// Rates is the fare table for distance-based routes. Amounts are EUR.
type Rates struct {
	BaseFare      float64
	PerKm         float64
	PerMinute     float64
	StopSurcharge float64
	MinimumFare   int
}

// DefaultRates returns the canonical NexaRide fare table.
func DefaultRates() Rates {
	return Rates{
		BaseFare:      5,
		PerKm:         1.80,
		PerMinute:     0.25,
		StopSurcharge: 10,
		MinimumFare:   25,
	}
}
