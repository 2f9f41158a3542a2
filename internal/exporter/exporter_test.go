package exporter

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nordquant/internal/seasonal"
	"nordquant/internal/timeseries"
)

func sampleSweep() *seasonal.Sweep {
	a := seasonal.SweepResult{
		BuyDate:      timeseries.Day(2017, time.April, 1),
		SellDate:     timeseries.Day(2017, time.May, 1),
		AvgGainRatio: 0.12,
		PosGainRatio: 0.8,
		YearCount:    5,
	}
	b := seasonal.SweepResult{
		BuyDate:      timeseries.Day(2017, time.April, 2),
		SellDate:     timeseries.Day(2017, time.May, 2),
		AvgGainRatio: 0.05,
		PosGainRatio: 0.6,
		YearCount:    5,
	}
	return &seasonal.Sweep{
		Chronological: []seasonal.SweepResult{a, b},
		ByAvgGain:     []seasonal.SweepResult{a, b},
		ByPosGain:     []seasonal.SweepResult{a, b},
	}
}

func TestWriteSweepCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSweepCSV(&buf, sampleSweep().ByAvgGain))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "buy_date,sell_date,avg_gain_ratio,pos_gain_ratio,year_count", lines[0])
	assert.Equal(t, "2017-04-01,2017-05-01,0.12,0.8,5", lines[1])
}

func TestSaveSweepXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "sweep.xlsx")
	require.NoError(t, SaveSweepXLSX(path, sampleSweep()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Chronological", "Best by avg gain", "Best by win ratio"},
		f.GetSheetList())

	rows, err := f.GetRows("Best by avg gain")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "buy_date", rows[0][0])
	assert.Equal(t, "2017-04-01", rows[1][0])
}

func TestWriteSummaryCSV(t *testing.T) {
	obs := []seasonal.ReturnObservation{
		{
			BuyDate:   timeseries.Day(2016, time.April, 1),
			SellDate:  timeseries.Day(2016, time.May, 2),
			BuyPrice:  90,
			SellPrice: 120,
			Gain:      30,
			GainRatio: 30.0 / 90.0,
		},
	}
	summary := seasonal.ReturnSummary{YearCount: 1, AvgGainRatio: 30.0 / 90.0, PosGainRatio: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, obs, summary))

	out := buf.String()
	assert.Contains(t, out, "2016-04-01,2016-05-02,90,120,30,")
	assert.Contains(t, out, "year_count,1")
	assert.Contains(t, out, "pos_gain_ratio,1")
	// Dispersion is undefined for a single observation.
	assert.NotContains(t, out, "variance")
}
