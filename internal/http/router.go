// README: HTTP router registration.
package http

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexaride/internal/http/handlers"
	"nexaride/internal/http/middleware"
	"nexaride/internal/modules/quote"
)

type RouterDeps struct {
	Quotes         handlers.QuoteService
	Recorder       quote.Recorder
	Places         handlers.Suggester
	Auth           handlers.Authenticator
	Logger         *zap.Logger
	CORSOrigins    []string
	MapsBrowserKey string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(logger), middleware.Recovery(logger))
	r.Use(apiOnly(cors.New(corsConfig(deps.CORSOrigins))))
	r.SetHTMLTemplate(handlers.Templates())

	pages := handlers.NewPageHandler(deps.MapsBrowserKey)
	r.GET("/", pages.Home)
	r.GET("/admin", pages.Admin)
	r.GET("/health", pages.Health)

	api := r.Group("/api")
	api.GET("/hello", pages.Hello)
	api.GET("/test", pages.Test)

	quoteHandler := handlers.NewQuoteHandler(deps.Quotes, deps.Recorder, logger)
	api.POST("/quote", quoteHandler.Create)

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	api.GET("/places/suggest", placesHandler.Suggest)

	authHandler := handlers.NewAuthHandler(deps.Auth, logger)
	api.POST("/login", authHandler.Login)

	return r
}

// apiOnly runs mw for /api paths. It is registered globally so that preflight
// requests, which have no matching route, still reach it.
func apiOnly(mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			mw(c)
		}
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
