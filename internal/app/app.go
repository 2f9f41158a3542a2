// Package app wires the common dependencies of the command-line tools:
// configuration, logging, the instrument registry and the price store.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"nordquant/internal/config"
	"nordquant/internal/infrastructure"
	"nordquant/internal/registry"
	"nordquant/internal/store"
	"nordquant/internal/timeseries"
)

// App holds the assembled dependencies.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *registry.Registry
	Store    *store.Store
}

// Load builds the application: config, logger, registry and an open
// price store.
func Load() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := infrastructure.InitializeLogger(cfg.Logging)

	reg, err := registry.New()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.Paths.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open price store: %w", err)
	}

	return &App{Config: cfg, Logger: logger, Registry: reg, Store: st}, nil
}

// Close releases held resources.
func (a *App) Close() error {
	return a.Store.Close()
}

// Series returns a symbol's price history, loading it from the store on
// first use.
func (a *App) Series(ctx context.Context, symbol string) (*timeseries.Series, error) {
	if s, err := a.Registry.Series(symbol); err == nil {
		return s, nil
	}

	inst, err := a.Registry.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	s, err := a.Store.LoadSeries(ctx, inst.Symbol)
	if err != nil {
		return nil, fmt.Errorf("load history for %s: %w", symbol, err)
	}
	if err := a.Registry.Attach(inst.Symbol, s); err != nil {
		return nil, err
	}
	return s, nil
}

// AttachAll loads every stored history into the registry. Symbols in the
// store but not in the registry tables are skipped with a warning.
func (a *App) AttachAll(ctx context.Context) error {
	symbols, err := a.Store.Symbols(ctx)
	if err != nil {
		return fmt.Errorf("list stored symbols: %w", err)
	}
	for _, symbol := range symbols {
		s, err := a.Store.LoadSeries(ctx, symbol)
		if err != nil {
			return fmt.Errorf("load history for %s: %w", symbol, err)
		}
		if err := a.Registry.Attach(symbol, s); err != nil {
			a.Logger.Warn("skipping stored history for unknown symbol", "symbol", symbol)
		}
	}
	return nil
}
