package backtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordquant/internal/timeseries"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// weekdaySeries builds a series over weekdays in [from, to] with prices
// from the priceAt function.
func weekdaySeries(t *testing.T, from, to time.Time, priceAt func(time.Time) float64) *timeseries.Series {
	t.Helper()
	var records []timeseries.PriceRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		p := priceAt(d)
		records = append(records, timeseries.PriceRecord{
			Date: d, Open: p, High: p, Low: p, Close: p, Volume: 1000, Value: p,
		})
	}
	s, err := timeseries.NewSeries(records,
		timeseries.ColumnOpen, timeseries.ColumnHigh, timeseries.ColumnLow,
		timeseries.ColumnClose, timeseries.ColumnVolume, timeseries.ColumnValue)
	require.NoError(t, err)
	return s
}

func constPrice(p float64) func(time.Time) float64 {
	return func(time.Time) float64 { return p }
}

func TestBrokerCosts(t *testing.T) {
	b := NewNordnetMini()

	t.Run("loan interest is a daily cost", func(t *testing.T) {
		interest := b.DailyInterest(-10000)
		assert.InDelta(t, -10000*0.0605/365, interest, 1e-9)
		assert.Negative(t, interest)
	})

	t.Run("deposits earn nothing", func(t *testing.T) {
		assert.Zero(t, b.DailyInterest(10000))
	})

	t.Run("brokerage has a floor", func(t *testing.T) {
		assert.Equal(t, 49.0, b.Brokerage(10, 100)) // 0.15% of 1000 = 1.50
	})

	t.Run("brokerage scales past the floor", func(t *testing.T) {
		assert.InDelta(t, 150.0, b.Brokerage(1000, 100), 1e-9)
	})
}

func TestBuyHoldSimulation(t *testing.T) {
	from := timeseries.Day(2017, time.January, 2)
	to := timeseries.Day(2017, time.March, 31)
	// Price doubles linearly over the quarter.
	start := from
	s := weekdaySeries(t, from, to, func(d time.Time) float64 {
		return 100 + float64(d.Sub(start)/(24*time.Hour))
	})

	sim := NewSimulator(NewNordnetMini(), discardLogger())
	sim.AddSeries("STL", s)

	result, err := sim.Run(context.Background(), NewBuyHoldStrategy("STL"), from, to, 100000)
	require.NoError(t, err)

	require.Len(t, result.Trades, 1)
	fill := result.Trades[0]
	assert.Equal(t, Buy, fill.Order.Side)
	// The order is placed on the first day and fills the next trading day.
	assert.True(t, fill.Date.After(from))

	assert.Equal(t, "buyhold", result.Strategy)
	assert.Greater(t, result.FinalEquity, result.InitialCash)
	assert.Len(t, result.EquityCurve, s.Len())
}

func TestOrdersFillAtNextTradingDay(t *testing.T) {
	from := timeseries.Day(2017, time.January, 6) // Friday
	to := timeseries.Day(2017, time.January, 13)
	s := weekdaySeries(t, from, to, constPrice(100))

	sim := NewSimulator(NewNordnetMini(), discardLogger())
	sim.AddSeries("STL", s)

	result, err := sim.Run(context.Background(), NewBuyHoldStrategy("STL"), from, to, 100000)
	require.NoError(t, err)

	require.Len(t, result.Trades, 1)
	// Friday's order skips the weekend and fills on Monday.
	assert.Equal(t, timeseries.Day(2017, time.January, 9), result.Trades[0].Date)
}

func TestLoanLimitRejectsOversizedBuys(t *testing.T) {
	from := timeseries.Day(2017, time.January, 2)
	to := timeseries.Day(2017, time.January, 13)
	s := weekdaySeries(t, from, to, constPrice(100))

	sim := NewSimulator(NewNordnetMini(), discardLogger())
	sim.AddSeries("STL", s)

	oversized := &orderOnce{order: Order{Symbol: "STL", Side: Buy, Quantity: 10000, Price: 100}}
	result, err := sim.Run(context.Background(), oversized, from, to, 1000)
	require.NoError(t, err)
	assert.Empty(t, result.Trades)
}

func TestSellingMoreThanHeldIsRejected(t *testing.T) {
	from := timeseries.Day(2017, time.January, 2)
	to := timeseries.Day(2017, time.January, 13)
	s := weekdaySeries(t, from, to, constPrice(100))

	sim := NewSimulator(NewNordnetMini(), discardLogger())
	sim.AddSeries("STL", s)

	short := &orderOnce{order: Order{Symbol: "STL", Side: Sell, Quantity: 10, Price: 100}}
	result, err := sim.Run(context.Background(), short, from, to, 1000)
	require.NoError(t, err)
	assert.Empty(t, result.Trades)
}

func TestSeasonalStrategyTradesYearlyWindow(t *testing.T) {
	from := timeseries.Day(2016, time.January, 4)
	to := timeseries.Day(2017, time.December, 29)
	s := weekdaySeries(t, from, to, constPrice(100))

	strategy, err := NewSeasonalStrategy("STL", time.April, 1, 30)
	require.NoError(t, err)

	sim := NewSimulator(NewNordnetMini(), discardLogger())
	sim.AddSeries("STL", s)

	result, err := sim.Run(context.Background(), strategy, from, to, 100000)
	require.NoError(t, err)

	// One buy and one sell per simulated year.
	require.Len(t, result.Trades, 4)
	assert.Equal(t, Buy, result.Trades[0].Order.Side)
	assert.Equal(t, Sell, result.Trades[1].Order.Side)
	assert.Equal(t, 2016, result.Trades[0].Date.Year())
	assert.Equal(t, 2017, result.Trades[2].Date.Year())

	// The sell happens at or just after the 30 day holding window.
	held := result.Trades[1].Date.Sub(result.Trades[0].Date)
	assert.GreaterOrEqual(t, held, 29*24*time.Hour)
	assert.Less(t, held, 40*24*time.Hour)

	// Flat prices mean the only losses are trading costs.
	assert.Less(t, result.FinalEquity, result.InitialCash)
}

func TestSimulationRejectsReversedRange(t *testing.T) {
	sim := NewSimulator(nil, discardLogger())
	sim.AddSeries("STL", weekdaySeries(t,
		timeseries.Day(2017, time.January, 2), timeseries.Day(2017, time.January, 6), constPrice(100)))

	_, err := sim.Run(context.Background(), NewBuyHoldStrategy("STL"),
		timeseries.Day(2017, time.February, 1), timeseries.Day(2017, time.January, 1), 1000)
	assert.Error(t, err)
}

func TestSimulationHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := NewSimulator(nil, discardLogger())
	sim.AddSeries("STL", weekdaySeries(t,
		timeseries.Day(2017, time.January, 2), timeseries.Day(2017, time.January, 6), constPrice(100)))

	_, err := sim.Run(ctx, NewBuyHoldStrategy("STL"),
		timeseries.Day(2017, time.January, 2), timeseries.Day(2017, time.January, 6), 1000)
	assert.ErrorIs(t, err, context.Canceled)
}

// orderOnce places a fixed order on the first day, then idles.
type orderOnce struct {
	order  Order
	placed bool
}

func (o *orderOnce) Name() string { return "orderonce" }

func (o *orderOnce) Execute(ctx context.Context, today time.Time, market *Market, account *Account) ([]Order, error) {
	if o.placed {
		return nil, nil
	}
	o.placed = true
	return []Order{o.order}, nil
}
