// README: HTML pages and liveness endpoints.
package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const mapsKeyPlaceholder = "YOUR_GOOGLE_MAPS_API_KEY"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type PageHandler struct {
	mapsKey string
	now     func() time.Time
}

func NewPageHandler(browserMapsKey string) *PageHandler {
	if browserMapsKey == "" {
		browserMapsKey = mapsKeyPlaceholder
	}
	return &PageHandler{mapsKey: browserMapsKey, now: time.Now}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"MapsKey": h.mapsKey})
}

func (h *PageHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{"MapsKey": h.mapsKey})
}

func (h *PageHandler) Hello(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": "NexaRide API is running!"})
}

func (h *PageHandler) Test(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Test endpoint working",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *PageHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
