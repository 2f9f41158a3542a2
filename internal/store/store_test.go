package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordquant/internal/timeseries"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prices.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSeries(t *testing.T, days ...int) *timeseries.Series {
	t.Helper()
	records := make([]timeseries.PriceRecord, 0, len(days))
	for _, d := range days {
		records = append(records, timeseries.PriceRecord{
			Date:   timeseries.Day(2017, time.March, d),
			Open:   100 + float64(d),
			High:   101 + float64(d),
			Low:    99 + float64(d),
			Close:  100.5 + float64(d),
			Volume: 1000,
			Value:  100.2 + float64(d),
		})
	}
	s, err := timeseries.NewSeries(records,
		timeseries.ColumnOpen, timeseries.ColumnHigh, timeseries.ColumnLow,
		timeseries.ColumnClose, timeseries.ColumnVolume, timeseries.ColumnValue)
	require.NoError(t, err)
	return s
}

func TestSaveAndLoadSeries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSeries(ctx, "STL", testSeries(t, 1, 2, 3)))

	loaded, err := s.LoadSeries(ctx, "STL")
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	rec, err := loaded.Exact(timeseries.Day(2017, time.March, 2))
	require.NoError(t, err)
	assert.Equal(t, 102.0, rec.Open)
	assert.Equal(t, 102.5, rec.Close)
	assert.True(t, loaded.HasColumn(timeseries.ColumnClose))
}

func TestSaveReplacesExistingHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSeries(ctx, "STL", testSeries(t, 1, 2, 3)))
	require.NoError(t, s.SaveSeries(ctx, "STL", testSeries(t, 6, 7)))

	loaded, err := s.LoadSeries(ctx, "STL")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	first, err := loaded.FirstDate()
	require.NoError(t, err)
	assert.Equal(t, timeseries.Day(2017, time.March, 6), first)
}

func TestLoadUnknownSymbol(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadSeries(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestSymbols(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSeries(ctx, "TEL", testSeries(t, 1)))
	require.NoError(t, s.SaveSeries(ctx, "STL", testSeries(t, 1)))

	symbols, err := s.Symbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"STL", "TEL"}, symbols)
}

func TestValueOnlySeriesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	index, err := timeseries.NewSeries([]timeseries.PriceRecord{
		{Date: timeseries.Day(2017, time.March, 1), Value: 700.5},
	}, timeseries.ColumnValue)
	require.NoError(t, err)

	require.NoError(t, s.SaveSeries(ctx, "OMXS30", index))

	loaded, err := s.LoadSeries(ctx, "OMXS30")
	require.NoError(t, err)
	assert.True(t, loaded.HasColumn(timeseries.ColumnValue))
	assert.False(t, loaded.HasColumn(timeseries.ColumnClose))
}
