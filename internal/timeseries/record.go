package timeseries

import (
	"time"
)

// Column identifies one price field of a PriceRecord.
type Column string

const (
	ColumnOpen   Column = "open"
	ColumnHigh   Column = "high"
	ColumnLow    Column = "low"
	ColumnClose  Column = "close"
	ColumnVolume Column = "volume"
	ColumnValue  Column = "value"
)

// CurrentPreference favors the opening price when estimating what an
// instrument trades at on a given day, falling back to the generic value
// column for markets that publish no OHLC data.
var CurrentPreference = []Column{ColumnOpen, ColumnValue}

// ClosePreference favors the closing price, used for stale lookups and for
// realized-trade accounting.
var ClosePreference = []Column{ColumnClose, ColumnValue}

// PriceRecord is one trading day for one instrument. Fields the source did
// not publish are zero; which fields are meaningful is declared per series
// through its column set.
type PriceRecord struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
	Value  float64   `json:"value"`
}

// Field returns the value of the named price column.
func (r PriceRecord) Field(c Column) float64 {
	switch c {
	case ColumnOpen:
		return r.Open
	case ColumnHigh:
		return r.High
	case ColumnLow:
		return r.Low
	case ColumnClose:
		return r.Close
	case ColumnVolume:
		return r.Volume
	case ColumnValue:
		return r.Value
	default:
		return 0
	}
}

// Day builds a calendar date with no time-of-day component. All series
// dates are normalized to this form.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time-of-day and timezone from t, keeping the
// calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Day(y, m, d)
}
