package seasonal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordquant/internal/timeseries"
)

// flatSeries builds a series with one record per calendar day where the
// close price is produced by price(date).
func flatSeries(t *testing.T, from, to time.Time, price func(time.Time) float64) *timeseries.Series {
	t.Helper()
	var records []timeseries.PriceRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		records = append(records, timeseries.PriceRecord{Date: d, Close: price(d)})
	}
	s, err := timeseries.NewSeries(records, timeseries.ColumnClose)
	require.NoError(t, err)
	return s
}

func constPrice(p float64) func(time.Time) float64 {
	return func(time.Time) float64 { return p }
}

func TestSampleValidation(t *testing.T) {
	s := flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2018, 12, 31), constPrice(100))

	t.Run("sell before buy", func(t *testing.T) {
		_, err := Sample(s, timeseries.Day(2016, 6, 1), timeseries.Day(2016, 5, 1))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("less than one year of history", func(t *testing.T) {
		short := flatSeries(t, timeseries.Day(2018, 1, 1), timeseries.Day(2018, 6, 30), constPrice(100))
		_, err := Sample(short, timeseries.Day(2018, 2, 1), timeseries.Day(2018, 3, 1))
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("all years hit the zero-price rule", func(t *testing.T) {
		zero := flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2018, 12, 31), constPrice(0))
		_, err := Sample(zero, timeseries.Day(2016, 2, 1), timeseries.Day(2016, 3, 1))
		assert.ErrorIs(t, err, ErrNoTrades)
	})
}

func TestSampleYearlyCadence(t *testing.T) {
	s := flatSeries(t, timeseries.Day(2010, 1, 1), timeseries.Day(2018, 12, 31), constPrice(100))

	observations, err := Sample(s, timeseries.Day(2016, 5, 17), timeseries.Day(2016, 6, 16))
	require.NoError(t, err)
	require.Len(t, observations, 9)

	for i, obs := range observations {
		assert.Equal(t, time.May, obs.BuyDate.Month())
		assert.Equal(t, 17, obs.BuyDate.Day())
		assert.Equal(t, 2010+i, obs.BuyDate.Year())
	}
}

func TestSampleThreeFullYears(t *testing.T) {
	// 2015-01-01 through 2018-12-31 with a December anchor: the 2018
	// anchor would sell in 2019 and is out of bounds, leaving exactly the
	// 2015->2016, 2016->2017 and 2017->2018 trades.
	s := flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2018, 12, 31), constPrice(100))

	observations, err := Sample(s, timeseries.Day(2016, 12, 15), timeseries.Day(2016, 12, 15).AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, observations, 3)

	assert.Equal(t, 2015, observations[0].BuyDate.Year())
	assert.Equal(t, 2016, observations[0].SellDate.Year())
	assert.Equal(t, 2017, observations[2].BuyDate.Year())
	assert.Equal(t, 2018, observations[2].SellDate.Year())
}

func TestSampleResolvesNonTradingDays(t *testing.T) {
	// Weekday-only series: an anchor on a Saturday fills on the following
	// Monday.
	var records []timeseries.PriceRecord
	for d := timeseries.Day(2015, 1, 1); !d.After(timeseries.Day(2017, 12, 31)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		records = append(records, timeseries.PriceRecord{Date: d, Close: 100})
	}
	s, err := timeseries.NewSeries(records, timeseries.ColumnClose)
	require.NoError(t, err)

	// 2016-07-02 is a Saturday.
	observations, err := Sample(s, timeseries.Day(2016, 7, 2), timeseries.Day(2016, 8, 2))
	require.NoError(t, err)
	for _, obs := range observations {
		assert.NotEqual(t, time.Saturday, obs.BuyDate.Weekday())
		assert.NotEqual(t, time.Sunday, obs.BuyDate.Weekday())
	}
}

func TestSampleZeroPriceSkip(t *testing.T) {
	// 2016 carries a zero close on the anchor date: that year is dropped
	// from the sample without an error.
	s := flatSeries(t, timeseries.Day(2014, 1, 1), timeseries.Day(2018, 12, 31), func(d time.Time) float64 {
		if d.Year() == 2016 && d.Month() == time.March {
			return 0
		}
		return 100
	})

	observations, err := Sample(s, timeseries.Day(2015, 3, 10), timeseries.Day(2015, 4, 9))
	require.NoError(t, err)

	years := make(map[int]bool)
	for _, obs := range observations {
		years[obs.BuyDate.Year()] = true
	}
	assert.False(t, years[2016], "zero-price year must not produce an observation")
	assert.Len(t, observations, 4) // 2014, 2015, 2017, 2018
}

func TestSampleGainArithmetic(t *testing.T) {
	s := flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2016, 12, 31), func(d time.Time) float64 {
		if d.Month() == time.May {
			return 120
		}
		return 100
	})

	observations, err := Sample(s, timeseries.Day(2016, 4, 15), timeseries.Day(2016, 5, 15))
	require.NoError(t, err)
	require.Len(t, observations, 2)

	for _, obs := range observations {
		assert.Equal(t, 100.0, obs.BuyPrice)
		assert.Equal(t, 120.0, obs.SellPrice)
		assert.Equal(t, 20.0, obs.Gain)
		assert.InDelta(t, 0.2, obs.GainRatio, 1e-12)
	}
}

func TestShiftYears(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		years int
		want  time.Time
	}{
		{"plain forward", timeseries.Day(2015, 5, 17), 1, timeseries.Day(2016, 5, 17)},
		{"plain backward", timeseries.Day(2015, 5, 17), -3, timeseries.Day(2012, 5, 17)},
		{"leap day into non-leap clamps", timeseries.Day(2016, 2, 29), 1, timeseries.Day(2017, 2, 28)},
		{"leap day into leap survives", timeseries.Day(2016, 2, 29), 4, timeseries.Day(2020, 2, 29)},
		{"century non-leap clamps", timeseries.Day(2096, 2, 29), 4, timeseries.Day(2100, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shiftYears(tt.in, tt.years))
		})
	}
}

func TestSampleLeapDayAnchor(t *testing.T) {
	s := flatSeries(t, timeseries.Day(2015, 1, 1), timeseries.Day(2018, 12, 31), constPrice(100))

	observations, err := Sample(s, timeseries.Day(2016, 2, 29), timeseries.Day(2016, 3, 30))
	require.NoError(t, err)

	for _, obs := range observations {
		assert.Equal(t, time.February, obs.BuyDate.Month())
		if isLeapYear(obs.BuyDate.Year()) {
			assert.Equal(t, 29, obs.BuyDate.Day())
		} else {
			assert.Equal(t, 28, obs.BuyDate.Day())
		}
	}
}
