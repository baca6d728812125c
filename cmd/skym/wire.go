package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivergara/skym/internal/adapters/driven/config/env"
	"github.com/ivergara/skym/internal/adapters/driven/config/file"
	"github.com/ivergara/skym/internal/adapters/driven/engine"
	"github.com/ivergara/skym/internal/adapters/driving/cli"
	"github.com/ivergara/skym/internal/adapters/driving/tui"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/core/services"
	"github.com/ivergara/skym/internal/logger"
)

// Ensure wiring implements the interfaces.
var (
	_ cli.Dependencies  = (*wiring)(nil)
	_ cli.ConfigWatcher = (*wiring)(nil)
)

// wiring builds services from the file config layered under SKYM_*
// environment overrides.
type wiring struct {
	env env.Config

	// store is the file layer opened by the last Settings call
	store *file.ConfigStore

	// picker options, replaced in tests
	pickerOpts []tui.Option
}

func newWiring(cfg env.Config) *wiring {
	return &wiring{env: cfg}
}

// Settings implements cli.Dependencies. An explicit path wins over
// SKYM_CONFIG, which wins over ~/.skym/config.toml.
func (w *wiring) Settings(path string) (driving.SettingsService, error) {
	if path == "" {
		path = w.env.Config
	}

	var (
		store *file.ConfigStore
		err   error
	)
	if path != "" {
		store, err = file.NewConfigStoreAt(path)
	} else {
		store, err = file.NewConfigStore("")
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config file: %s", store.Path())
	w.store = store

	return services.NewSettingsService(env.NewConfigStore(store, w.env)), nil
}

// Matcher implements cli.Dependencies.
func (w *wiring) Matcher(settings domain.AppSettings) (driving.MatchService, error) {
	eng, err := engine.New(settings.Match.Engine)
	if err != nil {
		return nil, err
	}
	picker := tui.NewPicker(settings.UI, w.pickerOpts...)
	logger.Debug("engine=%s workers=%d", settings.Match.Engine, settings.Match.Workers)
	return services.NewMatchService(eng, picker, settings.Match.Workers), nil
}

// WatchConfig implements cli.ConfigWatcher for the file opened by Settings.
func (w *wiring) WatchConfig(ctx context.Context) (<-chan struct{}, error) {
	if w.store == nil {
		return nil, errors.New("no config file opened")
	}
	return w.store.Watch(ctx)
}
