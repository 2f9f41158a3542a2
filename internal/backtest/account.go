package backtest

import (
	"fmt"

	"nordquant/internal/timeseries"
)

// Account tracks cash and open positions during a simulation.
type Account struct {
	Cash      float64
	Positions map[string]float64
}

// NewAccount returns an account funded with the given cash.
func NewAccount(cash float64) *Account {
	return &Account{Cash: cash, Positions: make(map[string]float64)}
}

// Position returns the held quantity of a symbol.
func (a *Account) Position(symbol string) float64 {
	return a.Positions[symbol]
}

// Equity values the account at the given day using the most recent
// closing price of each held instrument.
func (a *Account) Equity(market *Market) (float64, error) {
	equity := a.Cash
	for symbol, qty := range a.Positions {
		if qty == 0 {
			continue
		}
		s, ok := market.Series(symbol)
		if !ok {
			return 0, fmt.Errorf("no price history for held position %s", symbol)
		}
		price, _, err := s.PriceAtOrBefore(market.Today(), timeseries.ClosePreference...)
		if err != nil {
			return 0, fmt.Errorf("value position %s: %w", symbol, err)
		}
		equity += qty * price
	}
	return equity, nil
}

func (a *Account) apply(fill Fill) {
	cost := fill.FillPrice * fill.Order.Quantity
	switch fill.Order.Side {
	case Buy:
		a.Cash -= cost + fill.Brokerage
		a.Positions[fill.Order.Symbol] += fill.Order.Quantity
	case Sell:
		a.Cash += cost - fill.Brokerage
		a.Positions[fill.Order.Symbol] -= fill.Order.Quantity
	}
}
