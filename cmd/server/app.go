package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luachapp/luach-api/internal/catalog"
	"github.com/luachapp/luach-api/internal/config"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
	"github.com/luachapp/luach-api/internal/platform/hebcalapi"
	"github.com/luachapp/luach-api/internal/platform/logger"
	"github.com/luachapp/luach-api/internal/service/luach"
)

// application holds the assembled dependencies for one server process.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	catalog    *siddur.Catalog
	builder    *luach.ContextBuilder
	defaultLoc zmanim.Location
}

// newApplication loads configuration, configures logging, loads the
// catalog, and wires the event source and context builder.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"catalog_dir", cfg.Catalog.Dir,
		"events_enabled", cfg.Events.Enabled)

	cat, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	appLogger.Info("Catalog loaded",
		"categories", len(cat.Categories),
		"services", len(cat.Services),
		"buckets", len(cat.Buckets),
		"items", len(cat.Items))

	var source luach.EventSource
	if cfg.Events.Enabled {
		source = hebcalapi.NewClient(hebcalapi.Config{
			BaseURL: cfg.Events.BaseURL,
			Timeout: time.Duration(cfg.Events.TimeoutSeconds) * time.Second,
			Israel:  cfg.Location.Israel,
		}, appLogger)
	} else {
		appLogger.Info("Event source disabled, running offline")
	}

	builder := luach.NewContextBuilder(source, luach.DefaultKeywordTable(), appLogger)

	defaultLoc, err := defaultLocation(cfg.Location)
	if err != nil {
		return nil, err
	}

	return &application{
		config:     cfg,
		logger:     appLogger,
		catalog:    cat,
		builder:    builder,
		defaultLoc: defaultLoc,
	}, nil
}

// zmanimDefaults translates the configured calculation knobs into engine
// options.
func (app *application) zmanimDefaults() zmanim.Options {
	opts := zmanim.DefaultOptions()
	opts.CandleOffset = time.Duration(app.config.Zmanim.CandleLightingMinutes) * time.Minute
	if app.config.Zmanim.UseMagenAvraham {
		opts.DayBounds = zmanim.BoundsMagenAvraham
	}
	return opts
}

// defaultLocation translates the configured observation point, if any. The
// zone name was not validated at load time; an unknown zone is a wiring
// error worth failing on.
func defaultLocation(lc config.LocationConfig) (zmanim.Location, error) {
	if !lc.Set() {
		return zmanim.Location{}, nil
	}
	zone, err := time.LoadLocation(lc.TimeZone)
	if err != nil {
		return zmanim.Location{}, fmt.Errorf("loading configured time zone: %w", err)
	}
	return zmanim.Location{
		Latitude:  lc.Latitude,
		Longitude: lc.Longitude,
		Zone:      zone,
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}
