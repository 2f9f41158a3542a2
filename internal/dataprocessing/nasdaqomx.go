package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"nordquant/internal/timeseries"
)

// NasdaqOMXColumns is the column set of a Nasdaq OMX index export: a
// single end-of-day value per date.
var NasdaqOMXColumns = []timeseries.Column{timeseries.ColumnValue}

// nasdaqDateFormats covers the date renderings seen in index exports.
var nasdaqDateFormats = []string{
	"01/02/2006",
	"2006-01-02",
	"1/2/2006",
	"2006-01-02 15:04:05",
}

// LoadNasdaqOMXFile reads a Nasdaq OMX ExportHistory Excel file into a
// series. The sheet layout varies between exports, so the header row is
// located by its column titles rather than assumed at a fixed position.
func LoadNasdaqOMXFile(path string) (*timeseries.Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open index export: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("index export %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	dateCol, valueCol, headerRow := -1, -1, -1
	for i, row := range rows {
		for j, cell := range row {
			title := strings.ToLower(strings.TrimSpace(cell))
			switch {
			case title == "trade date" || title == "date":
				dateCol = j
			case strings.Contains(title, "value") || title == "close":
				if valueCol == -1 {
					valueCol = j
				}
			}
		}
		if dateCol >= 0 && valueCol >= 0 {
			headerRow = i
			break
		}
		dateCol, valueCol = -1, -1
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("index export %s: no date/value header found", path)
	}

	var records []timeseries.PriceRecord
	for _, row := range rows[headerRow+1:] {
		if dateCol >= len(row) || valueCol >= len(row) {
			continue
		}
		dateCell := strings.TrimSpace(row[dateCol])
		valueCell := strings.TrimSpace(row[valueCol])
		if dateCell == "" || valueCell == "" {
			continue
		}

		date, err := parseNasdaqDate(dateCell)
		if err != nil {
			continue
		}
		// Thousands separators appear in some exports.
		value, err := strconv.ParseFloat(strings.ReplaceAll(valueCell, ",", ""), 64)
		if err != nil {
			continue
		}
		records = append(records, timeseries.PriceRecord{Date: date, Value: value})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("index export %s contains no data rows", path)
	}

	return timeseries.NewSeries(dedupe(records), NasdaqOMXColumns...)
}

func parseNasdaqDate(s string) (time.Time, error) {
	for _, format := range nasdaqDateFormats {
		if d, err := time.Parse(format, s); err == nil {
			return timeseries.Normalize(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}
