// Command scraper downloads daily price histories for every registered
// instrument, parses them, and stores the results in the price database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nordquant/internal/app"
	"nordquant/internal/dataprocessing"
	"nordquant/internal/registry"
	"nordquant/internal/scraper"
	"nordquant/internal/timeseries"
)

func main() {
	market := flag.String("market", "", "only download one market: OSE, OAX, MERK or OMX")
	rps := flag.Float64("rps", 0, "override configured requests per second")
	combined := flag.String("combined", "", "write a combined CSV of all parsed histories to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
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

	if *rps <= 0 {
		*rps = a.Config.Scraper.RequestsPerSecond
	}

	instruments := selectInstruments(a, *market)
	if len(instruments) == 0 {
		a.Logger.Error("No instruments match", "market", *market)
		os.Exit(1)
	}
	a.Logger.Info("Starting download", "instruments", len(instruments), "rps", *rps)

	s := scraper.New(scraper.Options{
		DataDir:           a.Config.Paths.DataDir,
		RequestsPerSecond: *rps,
		Concurrency:       a.Config.Scraper.Concurrency,
		Timeout:           a.Config.Scraper.Timeout,
		RetryCount:        a.Config.Scraper.RetryCount,
	}, a.Logger)

	results, err := s.FetchAll(ctx, instruments)
	if err != nil {
		a.Logger.Error("Download aborted", "error", err)
		os.Exit(1)
	}

	stored, failed := 0, 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		series, err := parse(instruments[i], res.Path, a.Logger)
		if err != nil {
			a.Logger.Warn("Failed to parse history", "symbol", res.Symbol, "error", err)
			failed++
			continue
		}
		if err := a.Store.SaveSeries(ctx, res.Symbol, series); err != nil {
			a.Logger.Error("Failed to store history", "symbol", res.Symbol, "error", err)
			os.Exit(1)
		}
		stored++
	}
	a.Logger.Info("Download finished", "stored", stored, "failed", failed)

	if *combined != "" {
		if err := writeCombined(ctx, a, *combined); err != nil {
			a.Logger.Error("Failed to write combined CSV", "path", *combined, "error", err)
			os.Exit(1)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func selectInstruments(a *app.App, market string) []*registry.Instrument {
	all := a.Registry.Instruments()
	if market == "" {
		return all
	}
	var out []*registry.Instrument
	for _, inst := range all {
		if strings.EqualFold(inst.Market, market) {
			out = append(out, inst)
		}
	}
	return out
}

func parse(inst *registry.Instrument, path string, logger *slog.Logger) (*timeseries.Series, error) {
	if inst.SourceFormat == registry.FormatXLSX {
		return dataprocessing.LoadNasdaqOMXFile(path)
	}
	return dataprocessing.LoadNetfondsFile(path, logger)
}

func writeCombined(ctx context.Context, a *app.App, path string) error {
	symbols, err := a.Store.Symbols(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = dataprocessing.WriteCombinedCSV(f, symbols, func(symbol string) (*timeseries.Series, error) {
		return a.Store.LoadSeries(ctx, symbol)
	})
	if err != nil {
		return err
	}
	return f.Close()
}
