package backtest

import (
	"context"
	"fmt"
	"math"
	"time"

	"nordquant/internal/timeseries"
)

// BuyHoldStrategy buys one instrument with the available cash on the
// first simulated day and never trades again. It is the baseline other
// strategies are judged against.
type BuyHoldStrategy struct {
	Symbol string
	bought bool
}

// NewBuyHoldStrategy returns a buy-and-hold strategy for one symbol.
func NewBuyHoldStrategy(symbol string) *BuyHoldStrategy {
	return &BuyHoldStrategy{Symbol: symbol}
}

func (s *BuyHoldStrategy) Name() string { return "buyhold" }

func (s *BuyHoldStrategy) Execute(ctx context.Context, today time.Time, market *Market, account *Account) ([]Order, error) {
	if s.bought {
		return nil, nil
	}
	view, ok := market.Series(s.Symbol)
	if !ok {
		return nil, nil // not trading yet
	}
	price, _, err := view.PriceAtOrBefore(today, timeseries.ClosePreference...)
	if err != nil || price <= 0 {
		return nil, nil
	}

	qty := affordableQuantity(account.Cash, price)
	if qty <= 0 {
		return nil, fmt.Errorf("cannot afford a single share of %s at %.2f", s.Symbol, price)
	}
	s.bought = true
	return []Order{{Symbol: s.Symbol, Side: Buy, Quantity: qty, Price: price}}, nil
}

// SeasonalStrategy trades one instrument on a yearly rhythm: buy on a
// fixed calendar date, sell a fixed number of days later, repeat every
// year. The date pair typically comes from the seasonal date-sweep
// ranking of the instrument's earlier history.
type SeasonalStrategy struct {
	Symbol      string
	BuyMonth    time.Month
	BuyDay      int
	DaysBetween int

	holding  bool
	sellDate time.Time
}

// NewSeasonalStrategy returns a seasonal strategy that buys on the given
// calendar date every year and sells daysBetween days later.
func NewSeasonalStrategy(symbol string, buyMonth time.Month, buyDay, daysBetween int) (*SeasonalStrategy, error) {
	if buyDay < 1 || buyDay > 31 {
		return nil, fmt.Errorf("invalid buy day %d", buyDay)
	}
	if daysBetween < 1 {
		return nil, fmt.Errorf("days between buy and sell must be positive, got %d", daysBetween)
	}
	return &SeasonalStrategy{
		Symbol:      symbol,
		BuyMonth:    buyMonth,
		BuyDay:      buyDay,
		DaysBetween: daysBetween,
	}, nil
}

func (s *SeasonalStrategy) Name() string { return "seasonal" }

func (s *SeasonalStrategy) Execute(ctx context.Context, today time.Time, market *Market, account *Account) ([]Order, error) {
	view, ok := market.Series(s.Symbol)
	if !ok {
		return nil, nil
	}
	price, _, err := view.PriceAtOrBefore(today, timeseries.ClosePreference...)
	if err != nil || price <= 0 {
		return nil, nil
	}

	if s.holding {
		if !today.Before(s.sellDate) {
			s.holding = false
			qty := account.Position(s.Symbol)
			if qty > 0 {
				return []Order{{Symbol: s.Symbol, Side: Sell, Quantity: qty, Price: price}}, nil
			}
		}
		return nil, nil
	}

	buyDate := s.buyDateIn(today.Year())
	// Missed this year's window entirely; wait for the next one.
	if today.After(buyDate.AddDate(0, 0, s.DaysBetween)) {
		return nil, nil
	}
	if today.Before(buyDate) {
		return nil, nil
	}

	qty := affordableQuantity(account.Cash, price)
	if qty <= 0 {
		return nil, nil
	}
	s.holding = true
	s.sellDate = buyDate.AddDate(0, 0, s.DaysBetween)
	return []Order{{Symbol: s.Symbol, Side: Buy, Quantity: qty, Price: price}}, nil
}

func (s *SeasonalStrategy) buyDateIn(year int) time.Time {
	day := s.BuyDay
	// Clamp to the month's last day, e.g. Feb 29 outside leap years.
	for day > 28 {
		d := time.Date(year, s.BuyMonth, day, 0, 0, 0, 0, time.UTC)
		if d.Month() == s.BuyMonth {
			break
		}
		day--
	}
	return timeseries.Day(year, s.BuyMonth, day)
}

// affordableQuantity sizes an all-in position, leaving headroom for the
// brokerage so the buy does not dip into borrowed money.
func affordableQuantity(cash, price float64) float64 {
	if price <= 0 {
		return 0
	}
	qty := math.Floor((cash - 100) / price)
	if qty < 0 {
		return 0
	}
	return qty
}
