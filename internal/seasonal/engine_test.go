package seasonal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordquant/internal/timeseries"
)

// seasonalSeries has a recurring spring pattern in every year: 90 through
// the first ten days of April, 120 through the first ten days of May, 100
// otherwise. Buying April 1-10 and selling 30 days later yields a 1/3
// return each year; everything else is flat or losing.
func seasonalSeries(t *testing.T) *timeseries.Series {
	t.Helper()
	return flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2018, 12, 31), func(d time.Time) float64 {
		switch {
		case d.Month() == time.April && d.Day() <= 10:
			return 90
		case d.Month() == time.May && d.Day() <= 10:
			return 120
		default:
			return 100
		}
	})
}

func TestBestDates(t *testing.T) {
	engine := NewEngine(nil)
	s := seasonalSeries(t)

	sweep, err := engine.BestDates(context.Background(), s, 2016, 30, 1)
	require.NoError(t, err)

	t.Run("chronological covers the reference year", func(t *testing.T) {
		require.NotEmpty(t, sweep.Chronological)
		first := sweep.Chronological[0]
		assert.Equal(t, 2016, first.BuyDate.Year())
		assert.Equal(t, first.BuyDate.AddDate(0, 0, 30), first.SellDate)
	})

	t.Run("top date is the seasonal dip", func(t *testing.T) {
		top := sweep.ByAvgGain[0]
		assert.Equal(t, time.April, top.BuyDate.Month())
		assert.LessOrEqual(t, top.BuyDate.Day(), 10)
		assert.InDelta(t, 120.0/90.0-1, top.AvgGainRatio, 1e-12)
		assert.InDelta(t, 1.0, top.PosGainRatio, 1e-12)
		assert.Equal(t, 4, top.YearCount)
	})

	t.Run("orderings are permutations of the same rows", func(t *testing.T) {
		assert.Len(t, sweep.ByAvgGain, len(sweep.Chronological))
		assert.Len(t, sweep.ByPosGain, len(sweep.Chronological))
	})

	t.Run("december dates sample one year less", func(t *testing.T) {
		// A December 2018 anchor would sell in 2019, past the data.
		for _, row := range sweep.Chronological {
			if row.BuyDate.Month() == time.December && row.BuyDate.Day() > 1 {
				assert.Equal(t, 3, row.YearCount, "date %s", row.BuyDate.Format("2006-01-02"))
			}
		}
	})
}

func TestBestDatesSmoothing(t *testing.T) {
	engine := NewEngine(nil)
	s := seasonalSeries(t)

	plain, err := engine.BestDates(context.Background(), s, 2016, 30, 1)
	require.NoError(t, err)
	smoothed, err := engine.BestDates(context.Background(), s, 2016, 30, 7)
	require.NoError(t, err)

	t.Run("same dates are emitted", func(t *testing.T) {
		assert.Len(t, smoothed.Chronological, len(plain.Chronological))
	})

	t.Run("flat regions are unchanged", func(t *testing.T) {
		// Mid-August is flat for weeks in either direction, so a 7-day
		// centered mean equals the raw value.
		for _, row := range smoothed.Chronological {
			if row.BuyDate.Month() == time.August && row.BuyDate.Day() == 15 {
				assert.InDelta(t, 0.0, row.AvgGainRatio, 1e-12)
			}
		}
	})

	t.Run("interior of the dip keeps its value", func(t *testing.T) {
		// The 7-day window centered on April 5 lies entirely inside the
		// April 1-10 dip.
		row := findRow(t, smoothed.Chronological, timeseries.Day(2016, 4, 5))
		assert.InDelta(t, 120.0/90.0-1, row.AvgGainRatio, 1e-12)
	})

	t.Run("edges of the dip are attenuated", func(t *testing.T) {
		// April 1 averages over three flat late-March dates, so its
		// smoothed gain sits strictly between zero and the raw dip value.
		row := findRow(t, smoothed.Chronological, timeseries.Day(2016, 4, 1))
		assert.Greater(t, row.AvgGainRatio, 0.0)
		assert.Less(t, row.AvgGainRatio, 120.0/90.0-1)
	})
}

// findRow locates the sweep row with the given buy date.
func findRow(t *testing.T, rows []SweepResult, buyDate time.Time) SweepResult {
	t.Helper()
	for _, row := range rows {
		if row.BuyDate.Equal(buyDate) {
			return row
		}
	}
	t.Fatalf("no sweep row for %s", buyDate.Format("2006-01-02"))
	return SweepResult{}
}

func TestBestDatesFailures(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty sweep when the year predates the data", func(t *testing.T) {
		late := flatSeries(t, timeseries.Day(2018, 1, 1), timeseries.Day(2018, 12, 31), constPrice(100))
		_, err := engine.BestDates(context.Background(), late, 2016, 30, 1)
		assert.ErrorIs(t, err, ErrEmptySweep)
	})

	t.Run("negative holding period", func(t *testing.T) {
		s := seasonalSeries(t)
		_, err := engine.BestDates(context.Background(), s, 2016, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		s := seasonalSeries(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.BestDates(ctx, s, 2016, 30, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSellDateScan(t *testing.T) {
	engine := NewEngine(nil)
	s := seasonalSeries(t)

	sweep, err := engine.SellDateScan(context.Background(), s, timeseries.Day(2016, 5, 5))
	require.NoError(t, err)

	t.Run("buy dates span the preceding year", func(t *testing.T) {
		first := sweep.Chronological[0]
		last := sweep.Chronological[len(sweep.Chronological)-1]
		assert.Equal(t, timeseries.Day(2015, 5, 6), first.BuyDate)
		assert.Equal(t, timeseries.Day(2016, 5, 5), last.BuyDate)
		for _, row := range sweep.Chronological {
			assert.Equal(t, timeseries.Day(2016, 5, 5), row.SellDate)
		}
	})

	t.Run("best lead time hits the april dip", func(t *testing.T) {
		top := sweep.ByAvgGain[0]
		assert.Equal(t, time.April, top.BuyDate.Month())
		assert.LessOrEqual(t, top.BuyDate.Day(), 10)
		assert.InDelta(t, 120.0/90.0-1, top.AvgGainRatio, 1e-12)
	})
}

func TestOrderings(t *testing.T) {
	day := func(d int) time.Time { return timeseries.Day(2016, time.March, d) }
	rows := []SweepResult{
		{BuyDate: day(1), AvgGainRatio: 0.10, PosGainRatio: 0.50},
		{BuyDate: day(2), AvgGainRatio: 0.10, PosGainRatio: 0.90},
		{BuyDate: day(3), AvgGainRatio: 0.30, PosGainRatio: 0.40},
		{BuyDate: day(4), AvgGainRatio: -0.05, PosGainRatio: 0.40},
	}
	sweep := orderings(rows)

	t.Run("avg gain ordering breaks ties on win ratio", func(t *testing.T) {
		got := make([]int, len(sweep.ByAvgGain))
		for i, r := range sweep.ByAvgGain {
			got[i] = r.BuyDate.Day()
		}
		assert.Equal(t, []int{3, 2, 1, 4}, got)
	})

	t.Run("win ratio ordering breaks ties on avg gain", func(t *testing.T) {
		got := make([]int, len(sweep.ByPosGain))
		for i, r := range sweep.ByPosGain {
			got[i] = r.BuyDate.Day()
		}
		assert.Equal(t, []int{2, 1, 3, 4}, got)
	})

	t.Run("worst is the reversed best, not an ascending re-sort", func(t *testing.T) {
		worst := sweep.WorstByAvgGain()
		require.Len(t, worst, len(sweep.ByAvgGain))
		for i := range worst {
			assert.Equal(t, sweep.ByAvgGain[len(worst)-1-i], worst[i])
		}
		// The reversed order puts the lower win ratio first among equal
		// averages, which an ascending sort would not.
		assert.Equal(t, 4, worst[0].BuyDate.Day())
		assert.Equal(t, 1, worst[1].BuyDate.Day())
		assert.Equal(t, 2, worst[2].BuyDate.Day())
	})

	t.Run("chronological order is untouched", func(t *testing.T) {
		assert.Equal(t, rows, sweep.Chronological)
	})
}
