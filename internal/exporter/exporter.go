// Package exporter writes analysis results to CSV and Excel files for
// spreadsheets and plotting tools.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"nordquant/internal/seasonal"
)

var sweepHeader = []string{
	"buy_date", "sell_date", "avg_gain_ratio", "pos_gain_ratio", "year_count",
}

// WriteSweepCSV writes sweep rows as CSV.
func WriteSweepCSV(w io.Writer, results []seasonal.SweepResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sweepHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.BuyDate.Format("2006-01-02"),
			r.SellDate.Format("2006-01-02"),
			formatRatio(r.AvgGainRatio),
			formatRatio(r.PosGainRatio),
			strconv.Itoa(r.YearCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveSweepCSV writes sweep rows to a CSV file, creating parent
// directories as needed.
func SaveSweepCSV(path string, results []seasonal.SweepResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteSweepCSV(f, results); err != nil {
		return err
	}
	return f.Close()
}

// SaveSweepXLSX writes sweep rows to an Excel workbook with one sheet
// per ordering.
func SaveSweepXLSX(path string, sweep *seasonal.Sweep) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows []seasonal.SweepResult
	}{
		{"Chronological", sweep.Chronological},
		{"Best by avg gain", sweep.ByAvgGain},
		{"Best by win ratio", sweep.ByPosGain},
	}

	for i, sheet := range sheets {
		if i == 0 {
			name := f.GetSheetName(0)
			if err := f.SetSheetName(name, sheet.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet.name, err)
			}
		}
		if err := writeSweepSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSweepSheet(f *excelize.File, sheet string, rows []seasonal.SweepResult) error {
	header := make([]interface{}, len(sweepHeader))
	for i, h := range sweepHeader {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{
			r.BuyDate.Format("2006-01-02"),
			r.SellDate.Format("2006-01-02"),
			r.AvgGainRatio,
			r.PosGainRatio,
			r.YearCount,
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// WriteSummaryCSV writes per-year observations and their aggregate
// statistics as CSV. The aggregate appears as a trailing comment-free
// stanza with empty date columns.
func WriteSummaryCSV(w io.Writer, obs []seasonal.ReturnObservation, summary seasonal.ReturnSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"buy_date", "sell_date", "buy_price", "sell_price", "gain", "gain_ratio"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, o := range obs {
		row := []string{
			o.BuyDate.Format("2006-01-02"),
			o.SellDate.Format("2006-01-02"),
			formatRatio(o.BuyPrice),
			formatRatio(o.SellPrice),
			formatRatio(o.Gain),
			formatRatio(o.GainRatio),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	stats := [][]string{
		{"year_count", strconv.Itoa(summary.YearCount)},
		{"avg_gain_ratio", formatRatio(summary.AvgGainRatio)},
		{"pos_gain_ratio", formatRatio(summary.PosGainRatio)},
	}
	if summary.YearCount >= 2 {
		stats = append(stats,
			[]string{"variance", formatRatio(summary.Variance)},
			[]string{"std_deviation", formatRatio(summary.StdDeviation)},
		)
	}
	for _, row := range stats {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
