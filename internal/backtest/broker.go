// Package backtest replays trading strategies against stored price
// histories. Strategies only ever see data up to the simulated day, and
// pay realistic Nordnet-style trading costs.
package backtest

import "time"

// Side is the direction of an order.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Order is a request to trade a quantity of an instrument. Price is the
// price the strategy observed when placing the order; fills happen at
// the next trading day's price.
type Order struct {
	Symbol   string
	Side     Side
	Quantity float64
	Price    float64
}

// Fill records an executed order.
type Fill struct {
	Date      time.Time
	Order     Order
	FillPrice float64
	Brokerage float64
}

// Broker models the cost structure of a stockbroker account.
type Broker struct {
	// AnnualLoanRate is charged on negative balances.
	AnnualLoanRate float64
	// AnnualDepositRate is paid on positive balances.
	AnnualDepositRate float64
	// BrokerageRate is the per-order commission fraction.
	BrokerageRate float64
	// BrokerageMinimum is the commission floor per order.
	BrokerageMinimum float64
	// MaxLoanRatio caps borrowed money at this fraction of equity.
	MaxLoanRatio float64
}

// NewNordnetMini returns the cost model of a Nordnet Mini account.
func NewNordnetMini() *Broker {
	return &Broker{
		AnnualLoanRate:    0.0605,
		AnnualDepositRate: 0,
		BrokerageRate:     0.0015,
		BrokerageMinimum:  49,
		MaxLoanRatio:      0.5,
	}
}

// DailyInterest returns one day's interest as a signed cash delta:
// negative (a cost) on borrowed money, non-negative on deposits.
func (b *Broker) DailyInterest(balance float64) float64 {
	rate := b.AnnualDepositRate
	if balance < 0 {
		rate = b.AnnualLoanRate
	}
	return (rate / 365.0) * balance
}

// Brokerage returns the commission for filling an order at the given
// price.
func (b *Broker) Brokerage(quantity, price float64) float64 {
	cost := b.BrokerageRate * quantity * price
	if cost < b.BrokerageMinimum {
		cost = b.BrokerageMinimum
	}
	return cost
}
