// README: Address suggestion endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexaride/internal/modules/places"
)

type Suggester interface {
	Suggest(ctx context.Context, query string) []places.Suggestion
}

type PlacesHandler struct {
	places Suggester
}

func NewPlacesHandler(s Suggester) *PlacesHandler {
	return &PlacesHandler{places: s}
}

type suggestionResp struct {
	Description   string `json:"description"`
	PlaceID       string `json:"placeId"`
	Type          string `json:"type"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
	AirportCode   string `json:"airportCode,omitempty"`
}

// Suggest handles GET /api/places/suggest?q=.
func (h *PlacesHandler) Suggest(c *gin.Context) {
	found := h.places.Suggest(c.Request.Context(), c.Query("q"))
	out := make([]suggestionResp, 0, len(found))
	for _, s := range found {
		out = append(out, suggestionResp{
			Description:   s.Description,
			PlaceID:       s.PlaceID,
			Type:          string(s.Kind),
			MainText:      s.MainText,
			SecondaryText: s.SecondaryText,
			AirportCode:   s.AirportCode,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": out})
}
