// README: Quote log backed by PostgreSQL.
package quote

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Record inserts one quote_log row.
func (s *Store) Record(ctx context.Context, q Quote) error {
	stops, err := json.Marshal(q.Request.Stops)
	if err != nil {
		return err
	}
	offers, err := json.Marshal(offerPayloads(q))
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO quote_log (
			id, pickup, destination, stops, passengers, trip_type, requested_at,
			source, distance_km, duration_min, airport_code,
			base_price, currency, offers, issued_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15
		)`,
		string(q.ID),
		q.Request.Pickup,
		q.Request.Destination,
		stops,
		q.Request.Passengers,
		string(q.Request.TripType),
		q.Request.RequestedAt,
		string(q.Metrics.Source),
		q.Metrics.DistanceKm,
		q.Metrics.DurationMinutes,
		nullIfEmpty(q.Metrics.AirportCode),
		q.BasePrice().Amount,
		q.BasePrice().Currency,
		offers,
		q.IssuedAt,
	)
	return err
}

// Get loads the stored summary of a quote, mainly for tests and support lookups.
func (s *Store) Get(ctx context.Context, id string) (LoggedQuote, error) {
	var lq LoggedQuote
	var airport *string
	err := s.db.QueryRow(ctx, `
		SELECT id::text, pickup, destination, passengers, source, base_price, airport_code, issued_at
		FROM quote_log
		WHERE id = $1`, id,
	).Scan(&lq.ID, &lq.Pickup, &lq.Destination, &lq.Passengers, &lq.Source, &lq.BasePrice, &airport, &lq.IssuedAt)
	if err != nil {
		return LoggedQuote{}, err
	}
	if airport != nil {
		lq.AirportCode = *airport
	}
	return lq, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
