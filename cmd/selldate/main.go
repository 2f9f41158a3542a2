// Command selldate ranks buy dates for a fixed sell date: when should
// money have entered an instrument to exit well on the given day.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"nordquant/internal/app"
	"nordquant/internal/exporter"
	"nordquant/internal/seasonal"
)

func main() {
	topN := flag.Int("topn", 20, "number of dates to print")
	worst := flag.Bool("worst", false, "print the worst dates instead of the best")
	by := flag.String("by", "avg", "ranking: avg (average gain) or pos (win ratio)")
	csvPath := flag.String("csv", "", "also write the full scan to this CSV file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] instrument sell_date\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s OBX 2017-05-16\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	instrument := flag.Arg(0)
	sellDate, err := time.Parse("2006-01-02", flag.Arg(1))
	if err != nil {
		slog.Error("Invalid sell date", "date", flag.Arg(1), "error", err)
		os.Exit(1)
	}
	if *by != "avg" && *by != "pos" {
		slog.Error("Invalid ranking", "by", *by)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.Load()
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	series, err := a.Series(ctx, instrument)
	if err != nil {
		a.Logger.Error("Failed to load instrument", "instrument", instrument, "error", err)
		os.Exit(1)
	}

	engine := seasonal.NewEngine(a.Logger)
	engine.SetConcurrency(a.Config.Analysis.Concurrency)

	sweep, err := engine.SellDateScan(ctx, series, sellDate)
	if err != nil {
		a.Logger.Error("Scan failed", "instrument", instrument, "error", err)
		os.Exit(1)
	}

	var ranked []seasonal.SweepResult
	switch {
	case *by == "avg" && !*worst:
		ranked = sweep.ByAvgGain
	case *by == "avg" && *worst:
		ranked = sweep.WorstByAvgGain()
	case *by == "pos" && !*worst:
		ranked = sweep.ByPosGain
	default:
		ranked = sweep.WorstByPosGain()
	}
	if len(ranked) > *topN {
		ranked = ranked[:*topN]
	}

	fmt.Printf("%-12s %-12s %10s %10s %6s\n", "buy", "sell", "avg gain", "win ratio", "years")
	for _, r := range ranked {
		fmt.Printf("%-12s %-12s %+9.2f%% %9.0f%% %6d\n",
			r.BuyDate.Format("2006-01-02"), r.SellDate.Format("2006-01-02"),
			r.AvgGainRatio*100, r.PosGainRatio*100, r.YearCount)
	}

	if *csvPath != "" {
		if err := exporter.SaveSweepCSV(*csvPath, sweep.Chronological); err != nil {
			a.Logger.Error("Failed to write CSV file", "path", *csvPath, "error", err)
			os.Exit(1)
		}
	}
}
