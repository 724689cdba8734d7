// README: Text-only distance/duration heuristic used when routing is unavailable.
package pricing

import "strings"

// intercityPairs are city pairs far enough apart to be priced as long-haul trips.
var intercityPairs = [][2]string{
	{"roma", "milano"},
	{"roma", "firenze"},
	{"roma", "napoli"},
	{"roma", "bologna"},
	{"roma", "venezia"},
	{"milano", "torino"},
	{"milano", "venezia"},
	{"milano", "bologna"},
	{"milano", "firenze"},
	{"milano", "napoli"},
	{"firenze", "napoli"},
	{"bari", "napoli"},
}

const (
	intercityKm = 300
	airportKm   = 50
	defaultKm   = 25
)

// Estimator guesses route metrics from free text. It never fails.
type Estimator struct {
	airports *AirportTable
}

func NewEstimator(airports *AirportTable) *Estimator {
	if airports == nil {
		airports = DefaultAirports()
	}
	return &Estimator{airports: airports}
}

// Estimate applies the first matching rule: intercity pair (one city per side),
// airport marker, default.
// WaypointCount and the airport flag are left to the caller.
func (e *Estimator) Estimate(origin, destination string) RouteMetrics {
	from := strings.ToLower(origin)
	to := strings.ToLower(destination)

	for _, pair := range intercityPairs {
		if splitAcross(from, to, pair[0], pair[1]) || splitAcross(from, to, pair[1], pair[0]) {
			return estimated(intercityKm, intercityKm*0.8+15)
		}
	}

	if e.isAirportText(origin) || e.isAirportText(destination) {
		return estimated(airportKm, airportKm*1.5+10)
	}

	return estimated(defaultKm, defaultKm*2+5)
}

// splitAcross reports whether city a is only on the origin side and city b only on the
// destination side. "Via Roma, Milano" names both cities, so it anchors neither.
func splitAcross(from, to, a, b string) bool {
	return strings.Contains(from, a) && !strings.Contains(from, b) &&
		strings.Contains(to, b) && !strings.Contains(to, a)
}

func (e *Estimator) isAirportText(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "aeroporto") || strings.Contains(lower, "airport") {
		return true
	}
	_, ok := e.airports.Lookup(text)
	return ok
}

func estimated(km, minutes float64) RouteMetrics {
	return RouteMetrics{DistanceKm: km, DurationMinutes: minutes, Source: SourceEstimated}
}
