// Command returns prints the historical year-over-year return of buying
// an instrument on one date and selling on another.
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
	csvPath := flag.String("csv", "", "also write the observations to this CSV file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] ticker buy_date sell_date\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dates are YYYY-MM-DD. Example: %s STL 2017-04-03 2017-05-02\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	ticker := flag.Arg(0)
	buy, err := time.Parse("2006-01-02", flag.Arg(1))
	if err != nil {
		slog.Error("Invalid buy date", "date", flag.Arg(1), "error", err)
		os.Exit(1)
	}
	sell, err := time.Parse("2006-01-02", flag.Arg(2))
	if err != nil {
		slog.Error("Invalid sell date", "date", flag.Arg(2), "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.Load()
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	series, err := a.Series(ctx, ticker)
	if err != nil {
		a.Logger.Error("Failed to load instrument", "ticker", ticker, "error", err)
		os.Exit(1)
	}

	observations, err := seasonal.Sample(series, buy, sell)
	if err != nil {
		a.Logger.Error("Analysis failed", "ticker", ticker, "error", err)
		os.Exit(1)
	}
	summary, err := seasonal.Summarize(observations)
	if err != nil {
		a.Logger.Error("Analysis failed", "ticker", ticker, "error", err)
		os.Exit(1)
	}

	for _, o := range observations {
		fmt.Printf("%s  buy %8.2f  %s  sell %8.2f  gain %+8.2f  (%+.2f%%)\n",
			o.BuyDate.Format("2006-01-02"), o.BuyPrice,
			o.SellDate.Format("2006-01-02"), o.SellPrice,
			o.Gain, o.GainRatio*100)
	}
	fmt.Printf("\nyears: %d  avg gain: %+.2f%%  win ratio: %.0f%%\n",
		summary.YearCount, summary.AvgGainRatio*100, summary.PosGainRatio*100)
	if summary.YearCount >= 2 {
		fmt.Printf("std deviation: %.4f\n", summary.StdDeviation)
	}

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			a.Logger.Error("Failed to create CSV file", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := exporter.WriteSummaryCSV(f, observations, summary); err != nil {
			a.Logger.Error("Failed to write CSV file", "path", *csvPath, "error", err)
			os.Exit(1)
		}
	}
}
