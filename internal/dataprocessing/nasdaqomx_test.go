package dataprocessing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nordquant/internal/timeseries"
)

func writeIndexExport(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, ref, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadNasdaqOMXFile(t *testing.T) {
	t.Run("finds header below preamble", func(t *testing.T) {
		path := writeIndexExport(t, [][]string{
			{"OMX Stockholm 30 Index"},
			{""},
			{"Trade Date", "Value"},
			{"01/02/2017", "1,517.20"},
			{"01/03/2017", "1520.41"},
		})

		s, err := LoadNasdaqOMXFile(path)
		require.NoError(t, err)
		require.Equal(t, 2, s.Len())

		rec, err := s.Exact(timeseries.Day(2017, time.January, 2))
		require.NoError(t, err)
		assert.Equal(t, 1517.20, rec.Value)
		assert.False(t, s.HasColumn(timeseries.ColumnClose))
		assert.True(t, s.HasColumn(timeseries.ColumnValue))
	})

	t.Run("skips blank and unparseable rows", func(t *testing.T) {
		path := writeIndexExport(t, [][]string{
			{"Date", "Value"},
			{"2017-01-02", "1517.20"},
			{"", ""},
			{"totals", "n/a"},
		})

		s, err := LoadNasdaqOMXFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("errors without a recognizable header", func(t *testing.T) {
		path := writeIndexExport(t, [][]string{
			{"just", "noise"},
		})

		_, err := LoadNasdaqOMXFile(path)
		assert.Error(t, err)
	})

	t.Run("errors with header but no rows", func(t *testing.T) {
		path := writeIndexExport(t, [][]string{
			{"Trade Date", "Value"},
		})

		_, err := LoadNasdaqOMXFile(path)
		assert.Error(t, err)
	})
}
