package cmd

import (
	"fmt"

	"storage-facade/core/config"
	"storage-facade/core/database"
	"storage-facade/core/logger"
	"storage-facade/core/metrics"
	"storage-facade/core/storage"
	"storage-facade/feature/journal"
	"storage-facade/feature/objects"

	"go.uber.org/zap"
)

var configPath string

// application is everything a command needs once configuration is loaded.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	journal *journal.Journal
	service *objects.Service
}

// bootstrap loads configuration and wires the facade. The journal is attached
// only when the database is enabled and reachable.
func bootstrap() (*application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	clients, err := storage.NewClients(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage clients: %w", err)
	}

	app := &application{cfg: cfg, logger: logg}
	opts := []objects.Option{}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		opts = append(opts, objects.WithMetrics(app.metrics))
	}

	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional journal database connection failed", zap.Error(err))
		} else if j, err := journal.New(db); err != nil {
			logg.Warn("Journal unavailable", zap.Error(err))
		} else {
			app.journal = j
			opts = append(opts, objects.WithJournal(j))
			logg.Info("Journal enabled", zap.String("driver", cfg.Database.Driver))
		}
	}

	app.service = objects.NewService(objects.Clients{
		Auth:    clients.Auth,
		Buckets: clients.Buckets,
		Uploads: clients.Uploads,
	}, cfg.Storage, logg, opts...)

	return app, nil
}
