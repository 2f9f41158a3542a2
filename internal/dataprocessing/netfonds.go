package dataprocessing

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"nordquant/internal/timeseries"
)

// NetfondsColumns is the column set every netfonds history carries.
var NetfondsColumns = []timeseries.Column{
	timeseries.ColumnOpen,
	timeseries.ColumnHigh,
	timeseries.ColumnLow,
	timeseries.ColumnClose,
	timeseries.ColumnVolume,
	timeseries.ColumnValue,
}

// ParseNetfonds reads a netfonds "sdv" daily history stream: a header
// line followed by semicolon-separated rows of
// date;paper;exchange;open;high;low;close;volume;value with yyyymmdd
// dates in latin-1 encoding. Rows arrive newest first and occasionally
// swapped, so the result is sorted by NewSeries. Malformed rows are
// skipped with a warning rather than failing the whole file.
func ParseNetfonds(r io.Reader, logger *slog.Logger) ([]timeseries.PriceRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	var records []timeseries.PriceRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if lineNum == 1 || line == "" {
			continue // header
		}

		rec, err := parseNetfondsRow(line)
		if err != nil {
			logger.Warn("skipping malformed netfonds row",
				"line", lineNum,
				"error", err,
			)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read netfonds history: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("netfonds history contains no rows")
	}
	return dedupe(records), nil
}

func parseNetfondsRow(line string) (timeseries.PriceRecord, error) {
	fields := strings.Split(line, ";")
	if len(fields) != 9 {
		return timeseries.PriceRecord{}, fmt.Errorf("expected 9 fields, got %d", len(fields))
	}

	date, err := time.Parse("20060102", fields[0])
	if err != nil {
		return timeseries.PriceRecord{}, fmt.Errorf("parse date %q: %w", fields[0], err)
	}

	var prices [6]float64
	names := [6]string{"open", "high", "low", "close", "volume", "value"}
	for i, raw := range fields[3:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return timeseries.PriceRecord{}, fmt.Errorf("parse %s %q: %w", names[i], raw, err)
		}
		prices[i] = v
	}

	return timeseries.PriceRecord{
		Date:   timeseries.Normalize(date),
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: prices[4],
		Value:  prices[5],
	}, nil
}

// LoadNetfondsFile parses a gzip-compressed netfonds history file into a
// series.
func LoadNetfondsFile(path string, logger *slog.Logger) (*timeseries.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream %s: %w", path, err)
	}
	defer gz.Close()

	records, err := ParseNetfonds(gz, logger)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return timeseries.NewSeries(records, NetfondsColumns...)
}

// dedupe drops rows that are exact repetitions of another row with the
// same date. Rows that share a date but disagree are both kept; the store
// reports those as an integrity violation on exact lookup instead of
// silently picking one.
func dedupe(records []timeseries.PriceRecord) []timeseries.PriceRecord {
	seen := make(map[timeseries.PriceRecord]struct{}, len(records))
	out := records[:0]
	for _, rec := range records {
		if _, ok := seen[rec]; ok {
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}
	return out
}
