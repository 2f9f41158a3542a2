package seasonal

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange reports a sell date before the buy date.
	ErrInvalidRange = errors.New("sell date is before buy date")
	// ErrInsufficientData reports that the series does not cover even one
	// full year for the requested date pair.
	ErrInsufficientData = errors.New("not enough data for one full year")
	// ErrNoTrades reports that the year walk produced zero observations.
	ErrNoTrades = errors.New("no historical trades for these dates")
	// ErrInsufficientSample reports a dispersion request over fewer than
	// two observations, for which sample variance is undefined.
	ErrInsufficientSample = errors.New("sample variance needs at least two observations")
	// ErrEmptySweep reports a sweep where every candidate date failed.
	ErrEmptySweep = errors.New("no calendar date produced a result")
)

// ReturnObservation is one realized trade: buying at the first trading day
// at or after the anchor buy date and selling at the first trading day at
// or after the anchor sell date, for one specific year.
type ReturnObservation struct {
	BuyDate   time.Time `json:"buy_date"`
	SellDate  time.Time `json:"sell_date"`
	BuyPrice  float64   `json:"buy_price"`
	SellPrice float64   `json:"sell_price"`
	Gain      float64   `json:"gain"`
	GainRatio float64   `json:"gain_ratio"`
}

// ReturnSummary aggregates the cross-year observations for one
// (buy date, sell date) pair. Variance and StdDeviation are sample
// statistics (divide by N-1) and are only populated when YearCount >= 2.
type ReturnSummary struct {
	YearCount    int     `json:"year_count"`
	AvgGainRatio float64 `json:"avg_gain_ratio"`
	PosGainRatio float64 `json:"pos_gain_ratio"`
	Variance     float64 `json:"variance"`
	StdDeviation float64 `json:"std_deviation"`
}

// SweepResult is one row of a date sweep: the summary statistics for one
// swept (buy date, sell date) pair.
type SweepResult struct {
	BuyDate      time.Time `json:"buy_date"`
	SellDate     time.Time `json:"sell_date"`
	AvgGainRatio float64   `json:"avg_gain_ratio"`
	PosGainRatio float64   `json:"pos_gain_ratio"`
	YearCount    int       `json:"year_count"`
}

// Sweep holds the full result set of a date sweep in its three orderings.
// Truncation to a top-N is the caller's concern.
type Sweep struct {
	// Chronological is ordered by buy date.
	Chronological []SweepResult `json:"chronological"`
	// ByAvgGain is ordered by average gain ratio descending, win ratio
	// breaking ties.
	ByAvgGain []SweepResult `json:"by_avg_gain"`
	// ByPosGain is ordered by win ratio descending, average gain ratio
	// breaking ties.
	ByPosGain []SweepResult `json:"by_pos_gain"`
}

// WorstByAvgGain returns ByAvgGain reversed. Reversing, rather than
// re-sorting ascending, keeps the tie-break direction consistent with the
// best ordering.
func (s *Sweep) WorstByAvgGain() []SweepResult {
	return reversed(s.ByAvgGain)
}

// WorstByPosGain returns ByPosGain reversed.
func (s *Sweep) WorstByPosGain() []SweepResult {
	return reversed(s.ByPosGain)
}

func reversed(in []SweepResult) []SweepResult {
	out := make([]SweepResult, len(in))
	for i, r := range in {
		out[len(in)-1-i] = r
	}
	return out
}
