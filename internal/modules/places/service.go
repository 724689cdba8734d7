// README: Address suggestions: matching airports first, then provider predictions.
package places

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"nexaride/internal/maps"
	"nexaride/internal/modules/pricing"
)

const (
	MinQueryLength = 2
	MaxSuggestions = 5
)

type Kind string

const (
	KindAirport  Kind = "airport"
	KindPlace    Kind = "place"
	KindFallback Kind = "fallback"
)

type Suggestion struct {
	Description   string
	PlaceID       string
	Kind          Kind
	MainText      string
	SecondaryText string
	AirportCode   string
}

// Predictor returns free-text address predictions.
type Predictor interface {
	Autocomplete(ctx context.Context, input string) ([]maps.Prediction, error)
}

type Service struct {
	airports  *pricing.AirportTable
	predictor Predictor
	logger    *zap.Logger
}

// NewService builds the suggestion service. predictor may be nil when no maps key is configured.
func NewService(predictor Predictor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{airports: pricing.DefaultAirports(), predictor: predictor, logger: logger}
}

func (s *Service) Suggest(ctx context.Context, query string) []Suggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, MaxSuggestions)
	for _, a := range s.airports.Search(query) {
		out = append(out, Suggestion{
			Description:   fmt.Sprintf("%s (%s)", a.DisplayName, a.Code),
			PlaceID:       "airport_" + a.Code,
			Kind:          KindAirport,
			MainText:      a.DisplayName,
			SecondaryText: "Aeroporto " + a.Code,
			AirportCode:   a.Code,
		})
	}

	if s.predictor != nil {
		preds, err := s.predictor.Autocomplete(ctx, query)
		if err != nil {
			s.logger.Warn("place autocomplete failed", zap.Error(err), zap.String("query", query))
			out = append(out, fallbackSuggestion(query))
		}
		for _, p := range preds {
			main := p.MainText
			if main == "" {
				main = p.Description
			}
			out = append(out, Suggestion{
				Description:   p.Description,
				PlaceID:       p.PlaceID,
				Kind:          KindPlace,
				MainText:      main,
				SecondaryText: p.SecondaryText,
			})
		}
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func fallbackSuggestion(query string) Suggestion {
	return Suggestion{
		Description:   fmt.Sprintf("Cerca %q su mappa", query),
		PlaceID:       "fallback",
		Kind:          KindFallback,
		MainText:      query,
		SecondaryText: "Ricerca generale",
	}
}
