// README: Base price calculation (airport flat fares, distance/time fares).
package pricing

import (
	"fmt"
	"math"
)

// Calculator turns route metrics into a whole-euro base price.
type Calculator struct {
	rates    Rates
	airports *AirportTable
}

func NewCalculator(rates Rates, airports *AirportTable) *Calculator {
	if airports == nil {
		airports = DefaultAirports()
	}
	return &Calculator{rates: rates, airports: airports}
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

// ComputeBasePrice prices a trip. Airport routes use the airport's flat fare plus the
// stop surcharge; everything else is baseFare + km + minutes + stops, rounded half up
// and floored at the minimum fare.
func (c *Calculator) ComputeBasePrice(m RouteMetrics, stopCount int) (int, error) {
	if err := validateMetrics(m, stopCount); err != nil {
		return 0, err
	}
	stops := float64(stopCount) * c.rates.StopSurcharge

	if m.IsAirportRoute {
		airport, ok := c.airports.ByCode(m.AirportCode)
		if !ok {
			return 0, fmt.Errorf("%w: unknown airport code %q", ErrInvalidMetrics, m.AirportCode)
		}
		return airport.BasePriceEur + roundHalfUp(stops), nil
	}

	total := c.rates.BaseFare +
		m.DistanceKm*c.rates.PerKm +
		m.DurationMinutes*c.rates.PerMinute +
		stops
	price := roundHalfUp(total)
	if price < c.rates.MinimumFare {
		price = c.rates.MinimumFare
	}
	return price, nil
}

func validateMetrics(m RouteMetrics, stopCount int) error {
	if !finiteNonNegative(m.DistanceKm) {
		return fmt.Errorf("%w: distance %v", ErrInvalidMetrics, m.DistanceKm)
	}
	if !finiteNonNegative(m.DurationMinutes) {
		return fmt.Errorf("%w: duration %v", ErrInvalidMetrics, m.DurationMinutes)
	}
	if stopCount < 0 {
		return fmt.Errorf("%w: stop count %d", ErrInvalidMetrics, stopCount)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// roundHalfUp rounds x.5 away from zero for the non-negative amounts used here.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
