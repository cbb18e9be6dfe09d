package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/postador-cli/internal/adapters/driven/api/rest"
	"github.com/custodia-labs/postador-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/postador-cli/internal/core/services"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// LogFileName is the TUI log file inside the config directory.
const LogFileName = "postador.log"

// build wires the adapters and services for one command run.
// An invalid config is reported but not fatal, so it can still be fixed
// with the settings command.
func build(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			return nil, err
		}
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)

	cfg, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if opts.APIURL != "" {
		cfg.BaseURL = opts.APIURL
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config %s: %v", store.Path(), err)
	}

	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}

	logger.Debug("scheduling service at %s", cfg.BaseURL)
	client := rest.NewClient(ctx, rest.Config{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.APIToken,
		Timeout:   cfg.APITimeout,
		RateLimit: cfg.RateLimit,
		Location:  loc,
		UserAgent: rest.DefaultUserAgent + "/" + cli.Version(),
	})

	return &cli.Services{
		Dashboard:  services.NewDashboardService(client, cfg),
		Scheduling: services.NewSchedulingService(client),
		Settings:   settingsService,
		LogFile:    filepath.Join(dir, LogFileName),
	}, nil
}
