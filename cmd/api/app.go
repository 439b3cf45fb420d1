package main

import (
	"fmt"
	"log/slog"
	"time"

	"cityscope/internal/assistant"
	"cityscope/internal/category"
	"cityscope/internal/compare"
	"cityscope/internal/config"
	"cityscope/internal/dataset"
	"cityscope/internal/geocode"
	"cityscope/internal/providers/census"
	"cityscope/internal/providers/marketindex"
	"cityscope/internal/providers/openstreetmap"
	"cityscope/internal/session"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	compareService compare.Service
	sessions       *session.Manager
	matcher        *assistant.Matcher
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	geocoder := geocode.NewService(
		openstreetmap.NewClient(cfg.Geocode.AttemptTimeout),
		geocode.Options{
			Attempts:       cfg.Geocode.Attempts,
			AttemptTimeout: cfg.Geocode.AttemptTimeout,
			RetryDelay:     cfg.Geocode.RetryDelay,
		},
		logger,
	)

	resolvers, store, err := buildResolvers(cfg)
	if err != nil {
		return nil, err
	}

	matcher := assistant.NewMatcher(logger)
	if store != nil {
		matcher = assistant.NewDatasetMatcher(store, logger)
	}

	app := &App{
		router:         router,
		logger:         logger,
		compareService: compare.NewService(geocoder, resolvers, logger),
		sessions:       session.NewManager(),
		matcher:        matcher,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// buildResolvers assembles the five category resolvers. The real-estate
// resolver is the only one with selectable strategies; the dataset store is
// returned too so the assistant can share it.
func buildResolvers(cfg *config.Config) ([]category.Resolver, *dataset.Store, error) {
	var (
		realEstate category.Resolver
		store      *dataset.Store
	)
	switch cfg.App.RealEstateStrategy {
	case "market_index":
		realEstate = category.NewMarketIndexRealEstateResolver(
			marketindex.NewClient(10*time.Second), cfg.Market.Symbol)
	case "dataset":
		var err error
		store, err = dataset.Load(cfg.Dataset.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load building dataset: %w", err)
		}
		realEstate = category.NewDatasetRealEstateResolver(store)
	default:
		realEstate = category.NewSyntheticRealEstateResolver()
	}

	censusClient := census.NewClientWithBaseURL(cfg.Census.BaseURL, cfg.Census.APIKey, 10*time.Second)

	resolvers := []category.Resolver{
		category.NewEducationResolver(),
		realEstate,
		category.NewDemographicsResolver(censusClient),
		category.NewSafetyResolver(),
		category.NewQualityOfLifeResolver(),
	}
	return resolvers, store, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
