// Command simulate backtests a trading strategy over stored price
// history.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"nordquant/internal/app"
	"nordquant/internal/backtest"
)

func main() {
	symbol := flag.String("symbol", "OBX", "instrument the strategy trades")
	cash := flag.Float64("cash", 100000, "initial cash")
	buyDate := flag.String("buy", "04-01", "seasonal strategy buy date (MM-DD)")
	holdDays := flag.Int("hold", 30, "seasonal strategy holding period in days")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] strategy from_date to_date\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Strategies: seasonal, buyhold. Dates are YYYY-MM-DD.\n")
		fmt.Fprintf(os.Stderr, "Example: %s -symbol STL seasonal 2010-01-01 2017-12-31\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	from, err := time.Parse("2006-01-02", flag.Arg(1))
	if err != nil {
		slog.Error("Invalid from date", "date", flag.Arg(1), "error", err)
		os.Exit(1)
	}
	to, err := time.Parse("2006-01-02", flag.Arg(2))
	if err != nil {
		slog.Error("Invalid to date", "date", flag.Arg(2), "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.Load()
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	series, err := a.Series(ctx, *symbol)
	if err != nil {
		a.Logger.Error("Failed to load instrument", "symbol", *symbol, "error", err)
		os.Exit(1)
	}

	strategy, err := buildStrategy(name, *symbol, *buyDate, *holdDays)
	if err != nil {
		a.Logger.Error("Unknown strategy", "strategy", name, "error", err)
		fmt.Fprintln(os.Stderr, "Available strategies are:")
		fmt.Fprintln(os.Stderr, "   seasonal")
		fmt.Fprintln(os.Stderr, "   buyhold")
		os.Exit(1)
	}

	sim := backtest.NewSimulator(backtest.NewNordnetMini(), a.Logger)
	sim.AddSeries(*symbol, series)

	result, err := sim.Run(ctx, strategy, from, to, *cash)
	if err != nil {
		a.Logger.Error("Simulation failed", "strategy", name, "error", err)
		os.Exit(1)
	}

	fmt.Printf("strategy:      %s on %s\n", result.Strategy, *symbol)
	fmt.Printf("period:        %s to %s\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
	fmt.Printf("initial cash:  %12.2f\n", result.InitialCash)
	fmt.Printf("final equity:  %12.2f\n", result.FinalEquity)
	fmt.Printf("return:        %+11.2f%%\n", (result.FinalEquity/result.InitialCash-1)*100)
	fmt.Printf("trades:        %d\n", len(result.Trades))
	for _, trade := range result.Trades {
		fmt.Printf("  %s  %-4s %8.0f x %8.2f  fees %6.2f\n",
			trade.Date.Format("2006-01-02"), trade.Order.Side,
			trade.Order.Quantity, trade.FillPrice, trade.Brokerage)
	}
}

func buildStrategy(name, symbol, buyDate string, holdDays int) (backtest.Strategy, error) {
	switch strings.ToLower(name) {
	case "buyhold":
		return backtest.NewBuyHoldStrategy(symbol), nil
	case "seasonal":
		d, err := time.Parse("01-02", buyDate)
		if err != nil {
			return nil, fmt.Errorf("invalid buy date %q: %w", buyDate, err)
		}
		return backtest.NewSeasonalStrategy(symbol, d.Month(), d.Day(), holdDays)
	default:
		return nil, fmt.Errorf("no strategy named %q", name)
	}
}
