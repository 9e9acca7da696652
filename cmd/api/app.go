package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rotas-gateway/internal/config"
	"rotas-gateway/internal/geocode"
	"rotas-gateway/internal/obstacles"
	"rotas-gateway/internal/providers/openrouteservice"
	"rotas-gateway/internal/providers/overpass"
	"rotas-gateway/internal/routing"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	routingService  routing.Service
	geocodeService  geocode.Service
	obstacleService obstacles.Service
}

// NewApp creates a new application with real provider clients. One pooled
// HTTP client serves every outbound call; it is the only state shared
// across requests.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout(),
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
	policy := cfg.RetryPolicy()

	ors := openrouteservice.NewClient(httpClient, openrouteservice.Options{
		APIKey:            cfg.ORS.APIKey,
		DirectionsBaseURL: cfg.ORS.DirectionsBaseURL,
		GeocodeURL:        cfg.ORS.GeocodeURL,
	}, policy, logger)
	ovp := overpass.NewClient(httpClient, cfg.Overpass.InterpreterURL, policy, logger)

	return newApp(cfg, logger,
		routing.NewService(ors, logger),
		geocode.NewService(ors, logger),
		obstacles.NewService(ovp, logger),
	)
}

// newApp wires the router around already-constructed services; tests use it
// with mock services.
func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	routingService routing.Service,
	geocodeService geocode.Service,
	obstacleService obstacles.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		routingService:  routingService,
		geocodeService:  geocodeService,
		obstacleService: obstacleService,
	}

	// Register routes
	app.registerRoutes()

	return app
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}
	return corsCfg
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
