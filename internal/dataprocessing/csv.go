package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"nordquant/internal/timeseries"
)

var combinedHeader = []string{
	"symbol", "date", "open", "high", "low", "close", "volume", "value",
}

// WriteCombinedCSV writes the given series into a single CSV stream, one
// row per record, ordered by the iteration order of symbols. Downstream
// tools (plotting, spreadsheets) read this combined file instead of the
// per-instrument source files.
func WriteCombinedCSV(w io.Writer, symbols []string, lookup func(symbol string) (*timeseries.Series, error)) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(combinedHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, symbol := range symbols {
		s, err := lookup(symbol)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", symbol, err)
		}
		for i := 0; i < s.Len(); i++ {
			rec := s.At(i)
			row := []string{
				symbol,
				rec.Date.Format("2006-01-02"),
				formatPrice(rec.Open),
				formatPrice(rec.High),
				formatPrice(rec.Low),
				formatPrice(rec.Close),
				formatPrice(rec.Volume),
				formatPrice(rec.Value),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row for %s: %w", symbol, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
