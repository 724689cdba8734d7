// README: Quote handler: decodes the booking form, prices it and records the result.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexaride/internal/modules/pricing"
	"nexaride/internal/modules/quote"
)

const recordTimeout = 2 * time.Second

// QuoteService prices quote requests.
type QuoteService interface {
	GetQuote(ctx context.Context, req quote.Request) (quote.Quote, error)
}

type QuoteHandler struct {
	quotes   QuoteService
	recorder quote.Recorder
	logger   *zap.Logger
	loc      *time.Location
}

// NewQuoteHandler builds the handler. recorder may be nil.
func NewQuoteHandler(svc QuoteService, recorder quote.Recorder, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		loc = time.UTC
	}
	return &QuoteHandler{quotes: svc, recorder: recorder, logger: logger, loc: loc}
}

// flexInt accepts a JSON number or a numeric string (form fields arrive as strings).
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("passengers: %q is not a whole number", s)
	}
	*f = flexInt(n)
	return nil
}

type quoteReq struct {
	TripType    string   `json:"tripType"`
	Pickup      string   `json:"pickup"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Passengers  flexInt  `json:"passengers"`
	Stops       []string `json:"stops"`
}

type vehicleResp struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Price     int      `json:"price"`
	Capacity  string   `json:"capacity"`
	Features  []string `json:"features"`
	Available bool     `json:"available"`
}

type routeResp struct {
	Pickup      string   `json:"pickup"`
	Destination string   `json:"destination"`
	Stops       []string `json:"stops"`
}

type quoteResp struct {
	ID              string        `json:"id"`
	EstimatedPrice  int           `json:"estimatedPrice"`
	Currency        string        `json:"currency"`
	Vehicles        []vehicleResp `json:"vehicles"`
	Route           routeResp     `json:"route"`
	Details         string        `json:"details"`
	Type            string        `json:"type"`
	Source          string        `json:"source"`
	DistanceKm      float64       `json:"distanceKm"`
	DurationMinutes float64       `json:"durationMinutes"`
	AirportCode     string        `json:"airportCode,omitempty"`
	TripType        string        `json:"tripType"`
	Passengers      int           `json:"passengers"`
	RequestedAt     *time.Time    `json:"requestedAt,omitempty"`
}

// Create handles POST /api/quote.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	requestedAt, err := h.parseDateTime(req.Date, req.Time)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.quotes.GetQuote(c.Request.Context(), quote.Request{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Stops:       req.Stops,
		Passengers:  int(req.Passengers),
		RequestedAt: requestedAt,
		TripType:    quote.TripType(strings.ToLower(strings.TrimSpace(req.TripType))),
	})
	if err != nil {
		writeQuoteError(c, h.logger, err)
		return
	}

	h.record(c.Request.Context(), q)
	writeJSON(c, http.StatusOK, gin.H{"success": true, "quote": toQuoteResp(q)})
}

func (h *QuoteHandler) record(ctx context.Context, q quote.Quote) {
	if h.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	go func() {
		defer cancel()
		if err := h.recorder.Record(ctx, q); err != nil {
			h.logger.Warn("quote not recorded", zap.String("quote_id", string(q.ID)), zap.Error(err))
		}
	}()
}

// parseDateTime reads the form's date (YYYY-MM-DD) and optional time (HH:MM) in
// Italian local time. An empty date means "as soon as possible".
func (h *QuoteHandler) parseDateTime(date, clock string) (*time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return nil, nil
	}
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, h.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date/time %q %q", date, clock)
	}
	return &t, nil
}

func toQuoteResp(q quote.Quote) quoteResp {
	vehicles := make([]vehicleResp, 0, len(q.Offers))
	for _, o := range q.Offers {
		vc, _ := pricing.VehicleClassByID(o.VehicleClassID)
		vehicles = append(vehicles, vehicleResp{
			ID:        o.VehicleClassID,
			Type:      vc.DisplayName,
			Price:     o.Price,
			Capacity:  fmt.Sprintf("%d-%d passeggeri", vc.MinPassengers, vc.MaxPassengers),
			Features:  vc.Features,
			Available: o.Eligible,
		})
	}
	stops := q.Request.Stops
	if stops == nil {
		stops = []string{}
	}
	return quoteResp{
		ID:              string(q.ID),
		EstimatedPrice:  q.BasePriceEur,
		Currency:        q.BasePrice().Currency,
		Vehicles:        vehicles,
		Route:           routeResp{Pickup: q.Request.Pickup, Destination: q.Request.Destination, Stops: stops},
		Details:         q.Details(),
		Type:            q.Kind(),
		Source:          string(q.Metrics.Source),
		DistanceKm:      q.Metrics.DistanceKm,
		DurationMinutes: q.Metrics.DurationMinutes,
		AirportCode:     q.Metrics.AirportCode,
		TripType:        string(q.Request.TripType),
		Passengers:      q.Request.Passengers,
		RequestedAt:     q.Request.RequestedAt,
	}
}
