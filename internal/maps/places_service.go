// README: Address predictions through the Google Place Autocomplete API.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Prediction is a simplified autocomplete result.
type Prediction struct {
	Description   string
	PlaceID       string
	MainText      string
	SecondaryText string
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
	opts   Options
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string, opts Options) (*PlacesService, error) {
	client, err := newClient(apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &PlacesService{client: client, opts: opts}, nil
}

// Autocomplete returns predictions for partial input, restricted to the configured
// region's country.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	r := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: s.opts.language(),
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {s.opts.region()},
		},
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Prediction{
			Description:   p.Description,
			PlaceID:       p.PlaceID,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return out, nil
}
