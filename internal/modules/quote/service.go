// README: Quote service resolves the route (or estimates it), prices it and builds offers.
package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexaride/internal/modules/pricing"
	"nexaride/internal/types"
)

const DefaultRoutingTimeout = 3 * time.Second

type Service struct {
	resolver  RouteResolver
	estimator *pricing.Estimator
	calc      *pricing.Calculator
	airports  *pricing.AirportTable
	timeout   time.Duration
	logger    *zap.Logger
	newID     func() string
	now       func() time.Time
}

// NewService wires the quote flow. A nil resolver means every quote is estimated.
func NewService(resolver RouteResolver, calc *pricing.Calculator, logger *zap.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultRoutingTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = pricing.NewCalculator(pricing.DefaultRates(), nil)
	}
	airports := pricing.DefaultAirports()
	return &Service{
		resolver:  resolver,
		estimator: pricing.NewEstimator(airports),
		calc:      calc,
		airports:  airports,
		timeout:   timeout,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// GetQuote prices a request. Routing is attempted once under the routing timeout;
// any routing failure falls back to the text estimate unless ctx itself is done.
func (s *Service) GetQuote(ctx context.Context, req Request) (Quote, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return Quote{}, err
	}

	metrics, err := s.routeMetrics(ctx, req)
	if err != nil {
		return Quote{}, err
	}
	metrics.WaypointCount = len(req.Stops)

	airport, isAirport := s.airports.Lookup(req.Pickup)
	if !isAirport {
		airport, isAirport = s.airports.Lookup(req.Destination)
	}
	metrics.IsAirportRoute = isAirport
	metrics.AirportCode = ""
	if isAirport {
		metrics.AirportCode = airport.Code
	}

	base, err := s.calc.ComputeBasePrice(metrics, len(req.Stops))
	if err != nil {
		s.logger.Error("price calculation rejected metrics",
			zap.Error(err),
			zap.Float64("distance_km", metrics.DistanceKm),
			zap.Float64("duration_min", metrics.DurationMinutes),
			zap.String("airport_code", metrics.AirportCode),
		)
		return Quote{}, err
	}

	q := Quote{
		ID:           types.ID(s.newID()),
		BasePriceEur: base,
		Metrics:      metrics,
		Offers:       pricing.EligibleOffers(base, req.Passengers),
		Request:      req,
		IssuedAt:     s.now().UTC(),
	}
	if isAirport {
		q.AirportName = airport.DisplayName
	}
	return q, nil
}

func (s *Service) routeMetrics(ctx context.Context, req Request) (pricing.RouteMetrics, error) {
	if s.resolver == nil {
		return s.estimator.Estimate(req.Pickup, req.Destination), nil
	}

	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	m, err := s.resolver.Resolve(rctx, req.Pickup, req.Destination, req.Stops)
	if err == nil {
		m.Source = pricing.SourceRouted
		return m, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return pricing.RouteMetrics{}, ctxErr
	}

	s.logger.Warn("routing failed, using estimate",
		zap.Error(err),
		zap.String("pickup", req.Pickup),
		zap.String("destination", req.Destination),
		zap.Int("stops", len(req.Stops)),
	)
	return s.estimator.Estimate(req.Pickup, req.Destination), nil
}

func normalizeRequest(req Request) (Request, error) {
	req.Pickup = strings.TrimSpace(req.Pickup)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Pickup == "" {
		return req, fmt.Errorf("%w: pickup is required", ErrInvalidRequest)
	}
	if req.Destination == "" {
		return req, fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if len(req.Stops) > MaxStops {
		return req, fmt.Errorf("%w: at most %d stops allowed", ErrInvalidRequest, MaxStops)
	}
	stops := make([]string, len(req.Stops))
	for i, stop := range req.Stops {
		stop = strings.TrimSpace(stop)
		if stop == "" {
			return req, fmt.Errorf("%w: stop %d is empty", ErrInvalidRequest, i+1)
		}
		stops[i] = stop
	}
	req.Stops = stops
	if req.Passengers < 1 {
		return req, fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	switch req.TripType {
	case "":
		req.TripType = TripOneWay
	case TripOneWay, TripRoundTrip:
	default:
		return req, fmt.Errorf("%w: unknown trip type %q", ErrInvalidRequest, req.TripType)
	}
	return req, nil
}
