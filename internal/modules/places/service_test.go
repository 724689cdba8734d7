package places

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexaride/internal/maps"
)

type stubPredictor struct {
	preds []maps.Prediction
	err   error
	calls int
}

func (s *stubPredictor) Autocomplete(_ context.Context, _ string) ([]maps.Prediction, error) {
	s.calls++
	return s.preds, s.err
}

func TestSuggest_ShortQuery(t *testing.T) {
	p := &stubPredictor{}
	svc := NewService(p, nil)

	assert.Empty(t, svc.Suggest(context.Background(), "m"))
	assert.Empty(t, svc.Suggest(context.Background(), "  "))
	assert.Zero(t, p.calls)
}

func TestSuggest_AirportsFirstThenPlaces(t *testing.T) {
	p := &stubPredictor{preds: []maps.Prediction{
		{Description: "Milano Centrale, Milano, MI, Italia", PlaceID: "p1", MainText: "Milano Centrale", SecondaryText: "Milano, MI, Italia"},
		{Description: "Milano Marittima, RA, Italia", PlaceID: "p2"},
		{Description: "Milano Porta Garibaldi", PlaceID: "p3"},
	}}
	svc := NewService(p, nil)

	got := svc.Suggest(context.Background(), "Milano")
	require.Len(t, got, MaxSuggestions)

	assert.Equal(t, KindAirport, got[0].Kind)
	assert.Equal(t, "Milano Linate (LIN)", got[0].Description)
	assert.Equal(t, "Aeroporto LIN", got[0].SecondaryText)
	assert.Equal(t, "MXP", got[1].AirportCode)
	assert.Equal(t, "BGY", got[2].AirportCode)
	assert.Equal(t, KindPlace, got[3].Kind)
	assert.Equal(t, "p1", got[3].PlaceID)
	assert.Equal(t, "Milano Marittima, RA, Italia", got[4].MainText)
}

func TestSuggest_ProviderFailure(t *testing.T) {
	svc := NewService(&stubPredictor{err: errors.New("quota")}, nil)

	got := svc.Suggest(context.Background(), "fiumi")
	require.Len(t, got, 2)
	assert.Equal(t, "FCO", got[0].AirportCode)
	assert.Equal(t, KindFallback, got[1].Kind)
	assert.Equal(t, "fiumi", got[1].MainText)
}

func TestSuggest_NoPredictor(t *testing.T) {
	svc := NewService(nil, nil)

	got := svc.Suggest(context.Background(), "cta")
	require.Len(t, got, 1)
	assert.Equal(t, "Catania Fontanarossa (CTA)", got[0].Description)

	assert.Empty(t, svc.Suggest(context.Background(), "via garibaldi"))
}
