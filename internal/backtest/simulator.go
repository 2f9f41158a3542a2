package backtest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nordquant/internal/timeseries"
)

// Strategy decides what to trade. Execute is called once per simulated
// day with a market view that ends at that day; returned orders fill at
// the next trading day's opening price.
type Strategy interface {
	Name() string
	Execute(ctx context.Context, today time.Time, market *Market, account *Account) ([]Order, error)
}

// EquityPoint is the account value at the end of one simulated day.
type EquityPoint struct {
	Date   time.Time
	Equity float64
}

// Result is a finished simulation.
type Result struct {
	Strategy    string
	InitialCash float64
	FinalEquity float64
	EquityCurve []EquityPoint
	Trades      []Fill
}

// Simulator replays a strategy over historical price data.
type Simulator struct {
	broker *Broker
	series map[string]*timeseries.Series
	logger *slog.Logger
}

// NewSimulator creates a simulator with the given broker cost model.
func NewSimulator(broker *Broker, logger *slog.Logger) *Simulator {
	if broker == nil {
		broker = NewNordnetMini()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		broker: broker,
		series: make(map[string]*timeseries.Series),
		logger: logger,
	}
}

// AddSeries registers an instrument's full price history.
func (sim *Simulator) AddSeries(symbol string, s *timeseries.Series) {
	sim.series[symbol] = s
}

// Run simulates the strategy from one day to another, inclusive, starting
// with the given cash. Days without trading in any registered instrument
// are skipped.
func (sim *Simulator) Run(ctx context.Context, strategy Strategy, from, to time.Time, initialCash float64) (*Result, error) {
	from = timeseries.Normalize(from)
	to = timeseries.Normalize(to)
	if to.Before(from) {
		return nil, fmt.Errorf("simulation range %s to %s is reversed",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	if len(sim.series) == 0 {
		return nil, errors.New("no instruments registered")
	}

	account := NewAccount(initialCash)
	result := &Result{Strategy: strategy.Name(), InitialCash: initialCash}
	var pending []Order

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		market, trading := sim.marketAt(day)
		if !trading {
			continue
		}

		pending = sim.fill(day, market, account, pending, result)

		account.Cash += sim.broker.DailyInterest(account.Cash)

		orders, err := strategy.Execute(ctx, day, market, account)
		if err != nil {
			return nil, fmt.Errorf("strategy %s on %s: %w", strategy.Name(), day.Format("2006-01-02"), err)
		}
		pending = append(pending, orders...)

		equity, err := account.Equity(market)
		if err != nil {
			return nil, err
		}
		result.EquityCurve = append(result.EquityCurve, EquityPoint{Date: day, Equity: equity})
	}

	if len(result.EquityCurve) == 0 {
		return nil, fmt.Errorf("no trading days between %s and %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	result.FinalEquity = result.EquityCurve[len(result.EquityCurve)-1].Equity
	return result, nil
}

// marketAt builds the day's market view. A day counts as a trading day
// when at least one registered instrument traded on it.
func (sim *Simulator) marketAt(day time.Time) (*Market, bool) {
	views := make(map[string]*timeseries.Series, len(sim.series))
	trading := false
	for symbol, s := range sim.series {
		view, err := s.Until(day)
		if err != nil {
			continue // not trading yet
		}
		views[symbol] = view
		if s.ExistedAt(day) {
			if _, err := s.Exact(day); err == nil {
				trading = true
			}
		}
	}
	return &Market{today: day, views: views}, trading
}

// fill executes pending orders that can trade today. Orders whose symbol
// does not trade today stay pending; orders that would breach the loan
// limit are dropped with a warning.
func (sim *Simulator) fill(day time.Time, market *Market, account *Account, pending []Order, result *Result) []Order {
	var remaining []Order
	for _, order := range pending {
		full, ok := sim.series[order.Symbol]
		if !ok {
			sim.logger.Warn("dropping order for unknown symbol", "symbol", order.Symbol)
			continue
		}
		rec, err := full.Exact(day)
		if err != nil {
			remaining = append(remaining, order)
			continue
		}

		price := rec.Field(timeseries.ColumnOpen)
		if !full.HasColumn(timeseries.ColumnOpen) || price == 0 {
			price = rec.Field(timeseries.ColumnValue)
		}
		if price == 0 {
			remaining = append(remaining, order)
			continue
		}

		brokerage := sim.broker.Brokerage(order.Quantity, price)
		if order.Side == Buy {
			if !sim.withinLoanLimit(market, account, order, price, brokerage) {
				sim.logger.Warn("order exceeds loan limit",
					"symbol", order.Symbol,
					"quantity", order.Quantity,
					"price", price,
				)
				continue
			}
		} else if account.Position(order.Symbol) < order.Quantity {
			sim.logger.Warn("order sells more than held",
				"symbol", order.Symbol,
				"quantity", order.Quantity,
				"held", account.Position(order.Symbol),
			)
			continue
		}

		fill := Fill{Date: day, Order: order, FillPrice: price, Brokerage: brokerage}
		account.apply(fill)
		result.Trades = append(result.Trades, fill)
	}
	return remaining
}

// withinLoanLimit checks that a buy leaves borrowed money at or below
// MaxLoanRatio of the resulting equity.
func (sim *Simulator) withinLoanLimit(market *Market, account *Account, order Order, price, brokerage float64) bool {
	cashAfter := account.Cash - order.Quantity*price - brokerage
	if cashAfter >= 0 {
		return true
	}
	equity, err := account.Equity(market)
	if err != nil {
		return false
	}
	equityAfter := equity - brokerage
	if equityAfter <= 0 {
		return false
	}
	return -cashAfter <= sim.broker.MaxLoanRatio*equityAfter
}
