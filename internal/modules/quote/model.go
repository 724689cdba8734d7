// README: Quote request/response types and the interfaces the quote flow depends on.
package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexaride/internal/modules/pricing"
	"nexaride/internal/types"
)

var ErrInvalidRequest = errors.New("invalid quote request")

// MaxStops is the number of intermediate stops a single transfer may have.
const MaxStops = 3

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

const (
	KindAirportTransfer = "airport_transfer"
	KindRegularRoute    = "regular_route"
)

// Request is what the customer asked for. TripType is echoed back and does not
// affect the price.
type Request struct {
	Pickup      string
	Destination string
	Stops       []string
	Passengers  int
	RequestedAt *time.Time
	TripType    TripType
}

// Quote is the priced answer to a Request. Offers only contains eligible classes.
type Quote struct {
	ID           types.ID
	BasePriceEur int
	Metrics      pricing.RouteMetrics
	Offers       []pricing.VehicleOffer
	Request      Request
	AirportName  string
	IssuedAt     time.Time
}

// BasePrice is the economy-equivalent price as money.
func (q Quote) BasePrice() types.Money {
	return types.EUR(q.BasePriceEur)
}

// Kind is the quote category shown to customers.
func (q Quote) Kind() string {
	if q.Metrics.IsAirportRoute {
		return KindAirportTransfer
	}
	return KindRegularRoute
}

// Details is the one-line human summary of the route.
func (q Quote) Details() string {
	if q.Metrics.IsAirportRoute {
		return "Trasferimento aeroportuale " + q.AirportName
	}
	return fmt.Sprintf("%.1fkm, %.0f min", q.Metrics.DistanceKm, q.Metrics.DurationMinutes)
}

// RouteResolver measures a route with a routing provider. Failures wrap
// pricing.ErrRoutingFailure.
type RouteResolver interface {
	Resolve(ctx context.Context, pickup, destination string, stops []string) (pricing.RouteMetrics, error)
}

// Recorder receives issued quotes (quote log, event stream).
type Recorder interface {
	Record(ctx context.Context, q Quote) error
}
