// README: Entry point; loads config, wires services and optional storage, runs the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexaride/internal/config"
	httptransport "nexaride/internal/http"
	"nexaride/internal/infra"
	"nexaride/internal/maps"
	"nexaride/internal/modules/auth"
	"nexaride/internal/modules/places"
	"nexaride/internal/modules/pricing"
	"nexaride/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mapsOpts := maps.Options{Language: cfg.Maps.Language, Region: cfg.Maps.Region}

	var resolver quote.RouteResolver
	var predictor places.Predictor
	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey, mapsOpts)
		if err != nil {
			logger.Fatal("maps route client", zap.Error(err))
		}
		resolver = routes
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey, mapsOpts)
		if err != nil {
			logger.Fatal("maps places client", zap.Error(err))
		}
		predictor = placesSvc
	} else {
		logger.Warn("NEXA_MAPS_API_KEY not set; quotes will use distance estimates only")
	}

	if resolver != nil && cfg.Redis.Addr != "" {
		rdb := infra.NewRedis(cfg.Redis.Addr)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable; route cache will fall through", zap.Error(err))
		}
		resolver = quote.NewCachedResolver(resolver, rdb, cfg.Redis.RouteTTL, logger)
	}

	var recorders []quote.Recorder
	if cfg.DB.DSN != "" {
		db, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer db.Close()
		recorders = append(recorders, quote.NewStore(db))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		writer := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() { _ = writer.Close() }()
		recorders = append(recorders, quote.NewPublisher(writer))
	}

	calc := pricing.NewCalculator(cfg.Pricing, pricing.DefaultAirports())
	quoteSvc := quote.NewService(resolver, calc, logger, cfg.Maps.RoutingTimeout)

	authSvc, err := auth.NewService(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		logger.Fatal("admin account", zap.Error(err))
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Quotes:         quoteSvc,
		Recorder:       quote.Combine(recorders...),
		Places:         places.NewService(predictor, logger),
		Auth:           authSvc,
		Logger:         logger,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		MapsBrowserKey: cfg.Maps.BrowserKey,
	})

	server := httptransport.NewServer(cfg.HTTP.Addr, router, logger)
	if err := server.Run(ctx); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
