package timeseries

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrEmptySeries reports an instrument with no price records.
	ErrEmptySeries = errors.New("series has no price records")
	// ErrNotFound reports a date with no matching or nearby record within
	// the series bounds.
	ErrNotFound = errors.New("no price record for date")
	// ErrAmbiguousMatch reports duplicate records for one date, a
	// data-integrity violation the store refuses to resolve silently.
	ErrAmbiguousMatch = errors.New("duplicate price records for date")
	// ErrNoColumn reports that none of the preferred price columns exist
	// in the series.
	ErrNoColumn = errors.New("no matching price column in series")
)

// Series is an ordered, immutable-once-built sequence of daily price
// records for one instrument. Records are sorted by date on construction;
// the sort is stable so duplicate dates stay adjacent and are detected by
// Exact rather than silently merged.
//
// A Series is safe for concurrent readers. Views share the backing array.
type Series struct {
	records []PriceRecord
	columns map[Column]struct{}
}

// NewSeries builds a Series from records, declaring which price columns the
// source actually populates. The records are copied, normalized to
// calendar dates, and sorted. An empty input is a load error, not a valid
// series.
func NewSeries(records []PriceRecord, columns ...Column) (*Series, error) {
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns declared", ErrNoColumn)
	}

	sorted := make([]PriceRecord, len(records))
	copy(sorted, records)
	for i := range sorted {
		sorted[i].Date = Normalize(sorted[i].Date)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cols := make(map[Column]struct{}, len(columns))
	for _, c := range columns {
		cols[c] = struct{}{}
	}

	return &Series{records: sorted, columns: cols}, nil
}

// Len returns the number of records in the series.
func (s *Series) Len() int {
	return len(s.records)
}

// At returns the record at index i.
func (s *Series) At(i int) PriceRecord {
	return s.records[i]
}

// Records returns a read-only iteration copy of the series records.
func (s *Series) Records() []PriceRecord {
	out := make([]PriceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// HasColumn reports whether the series declares the given price column.
func (s *Series) HasColumn(c Column) bool {
	_, ok := s.columns[c]
	return ok
}

// Columns returns the declared price columns, sorted for determinism.
func (s *Series) Columns() []Column {
	out := make([]Column, 0, len(s.columns))
	for c := range s.columns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveColumn returns the first preferred column the series declares.
func (s *Series) ResolveColumn(preference ...Column) (Column, error) {
	for _, c := range preference {
		if s.HasColumn(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: preference %v", ErrNoColumn, preference)
}

// FirstDate returns the date of the earliest record.
func (s *Series) FirstDate() (time.Time, error) {
	if len(s.records) == 0 {
		return time.Time{}, ErrEmptySeries
	}
	return s.records[0].Date, nil
}

// LastDate returns the date of the latest record.
func (s *Series) LastDate() (time.Time, error) {
	if len(s.records) == 0 {
		return time.Time{}, ErrEmptySeries
	}
	return s.records[len(s.records)-1].Date, nil
}

// ExistedAt reports whether date falls within the series' valid range.
func (s *Series) ExistedAt(date time.Time) bool {
	if len(s.records) == 0 {
		return false
	}
	d := Normalize(date)
	return !d.Before(s.records[0].Date) && !d.After(s.records[len(s.records)-1].Date)
}

// searchAtOrAfter returns the index of the first record whose date is >= d.
func (s *Series) searchAtOrAfter(d time.Time) int {
	return sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].Date.Before(d)
	})
}

// Exact returns the record for exactly the given date. A duplicate date is
// an ErrAmbiguousMatch, never resolved by picking one.
func (s *Series) Exact(date time.Time) (PriceRecord, error) {
	if len(s.records) == 0 {
		return PriceRecord{}, ErrEmptySeries
	}
	d := Normalize(date)
	i := s.searchAtOrAfter(d)
	if i >= len(s.records) || !s.records[i].Date.Equal(d) {
		return PriceRecord{}, fmt.Errorf("%w: %s", ErrNotFound, d.Format("2006-01-02"))
	}
	if i+1 < len(s.records) && s.records[i+1].Date.Equal(d) {
		return PriceRecord{}, fmt.Errorf("%w: %s", ErrAmbiguousMatch, d.Format("2006-01-02"))
	}
	return s.records[i], nil
}

// FirstAtOrAfter returns the earliest record whose date is >= date.
func (s *Series) FirstAtOrAfter(date time.Time) (PriceRecord, error) {
	if len(s.records) == 0 {
		return PriceRecord{}, ErrEmptySeries
	}
	d := Normalize(date)
	i := s.searchAtOrAfter(d)
	if i >= len(s.records) {
		return PriceRecord{}, fmt.Errorf("%w: no record at or after %s", ErrNotFound, d.Format("2006-01-02"))
	}
	return s.records[i], nil
}

// LastAtOrBefore returns the latest record whose date is <= date.
func (s *Series) LastAtOrBefore(date time.Time) (PriceRecord, error) {
	if len(s.records) == 0 {
		return PriceRecord{}, ErrEmptySeries
	}
	d := Normalize(date)
	i := s.searchAtOrAfter(d)
	if i < len(s.records) && s.records[i].Date.Equal(d) {
		return s.records[i], nil
	}
	if i == 0 {
		return PriceRecord{}, fmt.Errorf("%w: no record at or before %s", ErrNotFound, d.Format("2006-01-02"))
	}
	return s.records[i-1], nil
}

// PriceAtOrAfter resolves the best available price estimate for date using
// the next trading day at or after it. The returned time is the trading
// day the price comes from.
func (s *Series) PriceAtOrAfter(date time.Time, preference ...Column) (float64, time.Time, error) {
	col, err := s.ResolveColumn(preference...)
	if err != nil {
		return 0, time.Time{}, err
	}
	rec, err := s.FirstAtOrAfter(date)
	if err != nil {
		return 0, time.Time{}, err
	}
	return rec.Field(col), rec.Date, nil
}

// PriceAtOrBefore resolves a stale price estimate for date using the most
// recent trading day at or before it.
func (s *Series) PriceAtOrBefore(date time.Time, preference ...Column) (float64, time.Time, error) {
	col, err := s.ResolveColumn(preference...)
	if err != nil {
		return 0, time.Time{}, err
	}
	rec, err := s.LastAtOrBefore(date)
	if err != nil {
		return 0, time.Time{}, err
	}
	return rec.Field(col), rec.Date, nil
}

// View returns a bounded view spanning the records with from <= date <= to.
// The view shares the backing array with the parent, so it costs an index
// range rather than a copy; a backtest hands strategies a view ending at
// "today" to guarantee no future data leaks. An empty range is
// ErrEmptySeries.
func (s *Series) View(from, to time.Time) (*Series, error) {
	lo := s.searchAtOrAfter(Normalize(from))
	hi := s.searchAtOrAfter(Normalize(to).AddDate(0, 0, 1))
	if lo >= hi {
		return nil, fmt.Errorf("%w: no records in %s..%s", ErrEmptySeries,
			Normalize(from).Format("2006-01-02"), Normalize(to).Format("2006-01-02"))
	}
	return &Series{records: s.records[lo:hi], columns: s.columns}, nil
}

// Until returns the view of all records up to and including date.
func (s *Series) Until(date time.Time) (*Series, error) {
	if len(s.records) == 0 {
		return nil, ErrEmptySeries
	}
	return s.View(s.records[0].Date, date)
}
