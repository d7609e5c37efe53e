package commands

import (
	"fmt"

	"github.com/gridironlabs/cfpsim/internal/model"
	"github.com/gridironlabs/cfpsim/internal/simulation"
	"github.com/gridironlabs/cfpsim/internal/store"
	"github.com/gridironlabs/cfpsim/pkg/config"
	"github.com/gridironlabs/cfpsim/pkg/database"
	"github.com/gridironlabs/cfpsim/pkg/logger"
	"github.com/gridironlabs/cfpsim/pkg/redis"
)

// app bundles the wiring shared by every command: config, logger,
// database, cache, repository and the simulation engine.
type app struct {
	cfg    *config.Config
	logger *logger.Logger
	db     *database.DB
	cache  *redis.Cache
	repo   *store.SeasonRepository
	engine *simulation.Engine
}

// newApp loads config and connects everything. A missing or broken
// model bundle is not fatal here; the engine then rejects projections
// with a model-unavailable error so data endpoints keep working.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	cache := redis.NewCache(redisClient, "cfpsim")

	var contract model.Contract
	if bundle, err := model.LoadBundle(cfg.Model.Path); err != nil {
		log.WithError(err).Warn("Scoring model not loaded, projections disabled")
	} else {
		contract = bundle.Model
		log.WithFields(map[string]interface{}{
			"path":     cfg.Model.Path,
			"features": len(bundle.Model.ExpectedColumns()),
		}).Info("Scoring model loaded")
	}

	return &app{
		cfg:    cfg,
		logger: log,
		db:     db,
		cache:  cache,
		repo:   store.NewSeasonRepository(db.Pool),
		engine: simulation.New(contract, log),
	}, nil
}

// Close releases the app's connections.
func (a *app) Close() {
	a.db.Close()
}
