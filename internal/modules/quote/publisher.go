// README: Publishes quote.issued events to Kafka.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventQuoteIssued = "quote.issued"

// LoggedQuote is the persisted summary of an issued quote.
type LoggedQuote struct {
	ID          string
	Pickup      string
	Destination string
	Passengers  int
	Source      string
	BasePrice   int64
	AirportCode string
	IssuedAt    time.Time
}

type offerPayload struct {
	VehicleClass string `json:"vehicle_class"`
	Price        int    `json:"price"`
}

// IssuedEvent is the JSON payload of a quote.issued message.
type IssuedEvent struct {
	Type        string         `json:"type"`
	QuoteID     string         `json:"quote_id"`
	Pickup      string         `json:"pickup"`
	Destination string         `json:"destination"`
	Stops       []string       `json:"stops"`
	Passengers  int            `json:"passengers"`
	TripType    string         `json:"trip_type"`
	Source      string         `json:"source"`
	DistanceKm  float64        `json:"distance_km"`
	DurationMin float64        `json:"duration_min"`
	AirportCode string         `json:"airport_code,omitempty"`
	BasePrice   int64          `json:"base_price"`
	Currency    string         `json:"currency"`
	Offers      []offerPayload `json:"offers"`
	IssuedAt    time.Time      `json:"issued_at"`
}

func offerPayloads(q Quote) []offerPayload {
	out := make([]offerPayload, 0, len(q.Offers))
	for _, o := range q.Offers {
		out = append(out, offerPayload{VehicleClass: o.VehicleClassID, Price: o.Price})
	}
	return out
}

// NewIssuedEvent builds the event payload for q.
func NewIssuedEvent(q Quote) IssuedEvent {
	stops := q.Request.Stops
	if stops == nil {
		stops = []string{}
	}
	return IssuedEvent{
		Type:        EventQuoteIssued,
		QuoteID:     string(q.ID),
		Pickup:      q.Request.Pickup,
		Destination: q.Request.Destination,
		Stops:       stops,
		Passengers:  q.Request.Passengers,
		TripType:    string(q.Request.TripType),
		Source:      string(q.Metrics.Source),
		DistanceKm:  q.Metrics.DistanceKm,
		DurationMin: q.Metrics.DurationMinutes,
		AirportCode: q.Metrics.AirportCode,
		BasePrice:   q.BasePrice().Amount,
		Currency:    q.BasePrice().Currency,
		Offers:      offerPayloads(q),
		IssuedAt:    q.IssuedAt,
	}
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

// Record publishes q keyed by its id.
func (p *Publisher) Record(ctx context.Context, q Quote) error {
	body, err := json.Marshal(NewIssuedEvent(q))
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", EventQuoteIssued, err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(q.ID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventQuoteIssued)},
		},
	})
}
