// Command server runs the research API with a cron-scheduled nightly
// data refresh.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"nordquant/internal/app"
	"nordquant/internal/dataprocessing"
	"nordquant/internal/infrastructure"
	"nordquant/internal/registry"
	"nordquant/internal/scraper"
	"nordquant/internal/seasonal"
	"nordquant/internal/timeseries"
	transport "nordquant/internal/transport/http"
)

const version = "1.0.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s\n\nConfiguration via NQ_* environment variables or nordquant.yaml.\n", os.Args[0])
	}
	flag.Parse()

	a, err := app.Load()
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.AttachAll(ctx); err != nil {
		a.Logger.Error("Failed to load stored histories", "error", err)
		os.Exit(1)
	}
	a.Logger.Info("Price histories loaded", "instruments", len(a.Registry.Loaded()))

	providers, err := infrastructure.InitializeOTel(nil, a.Logger)
	if err != nil {
		a.Logger.Error("Failed to initialize observability", "error", err)
		os.Exit(1)
	}
	defer providers.Shutdown(context.Background())

	engine := seasonal.NewEngine(a.Logger)
	engine.SetConcurrency(a.Config.Analysis.Concurrency)

	router, err := transport.NewRouter(transport.RouterOptions{
		Registry:  a.Registry,
		Engine:    engine,
		Logger:    a.Logger,
		Providers: providers,
		Version:   version,
	})
	if err != nil {
		a.Logger.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	var scheduler *cron.Cron
	if a.Config.Scheduler.Enabled {
		scheduler = cron.New(cron.WithSeconds())
		_, err := scheduler.AddFunc(a.Config.Scheduler.Refresh, func() {
			if err := refresh(context.Background(), a); err != nil {
				a.Logger.Error("Scheduled refresh failed", "error", err)
			}
		})
		if err != nil {
			a.Logger.Error("Invalid refresh schedule", "schedule", a.Config.Scheduler.Refresh, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		a.Logger.Info("Refresh scheduled", "schedule", a.Config.Scheduler.Refresh)
	}

	srv := transport.NewServer(
		fmt.Sprintf(":%d", a.Config.Server.Port),
		router,
		a.Config.Server.ReadTimeout,
		a.Config.Server.WriteTimeout,
		a.Config.Server.IdleTimeout,
	)

	go func() {
		a.Logger.Info("Server listening", "port", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	a.Logger.Info("Shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}

// refresh re-downloads every instrument's history, stores it, and swaps
// the new series into the registry.
func refresh(ctx context.Context, a *app.App) error {
	a.Logger.Info("Refreshing price histories")

	s := scraper.New(scraper.Options{
		DataDir:           a.Config.Paths.DataDir,
		RequestsPerSecond: a.Config.Scraper.RequestsPerSecond,
		Concurrency:       a.Config.Scraper.Concurrency,
		Timeout:           a.Config.Scraper.Timeout,
		RetryCount:        a.Config.Scraper.RetryCount,
	}, a.Logger)

	instruments := a.Registry.Instruments()
	results, err := s.FetchAll(ctx, instruments)
	if err != nil {
		return err
	}

	refreshed := 0
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		series, err := parse(instruments[i], res.Path, a)
		if err != nil {
			a.Logger.Warn("Failed to parse refreshed history", "symbol", res.Symbol, "error", err)
			continue
		}
		if err := a.Store.SaveSeries(ctx, res.Symbol, series); err != nil {
			return fmt.Errorf("store %s: %w", res.Symbol, err)
		}
		if err := a.Registry.Attach(res.Symbol, series); err != nil {
			return fmt.Errorf("attach %s: %w", res.Symbol, err)
		}
		refreshed++
	}
	a.Logger.Info("Refresh finished", "refreshed", refreshed, "total", len(instruments))
	return nil
}

func parse(inst *registry.Instrument, path string, a *app.App) (*timeseries.Series, error) {
	if inst.SourceFormat == registry.FormatXLSX {
		return dataprocessing.LoadNasdaqOMXFile(path)
	}
	return dataprocessing.LoadNetfondsFile(path, a.Logger)
}
