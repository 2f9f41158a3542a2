package seasonal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"nordquant/internal/timeseries"
)

// DefaultConcurrency bounds the sweep worker pool. Per-date computations
// are independent, so the sweep is embarrassingly parallel.
const DefaultConcurrency = 4

// Engine runs date sweeps over instrument series. The zero concurrency
// and nil logger are replaced with defaults.
type Engine struct {
	logger      *slog.Logger
	concurrency int
	preference  []timeseries.Column
}

// NewEngine creates a sweep engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:      logger.With(slog.String("component", "seasonal_engine")),
		concurrency: DefaultConcurrency,
		preference:  timeseries.ClosePreference,
	}
}

// SetConcurrency bounds the worker pool for subsequent sweeps.
func (e *Engine) SetConcurrency(n int) {
	if n > 0 {
		e.concurrency = n
	}
}

// SetColumnPreference overrides the price column preference for
// subsequent sweeps.
func (e *Engine) SetColumnPreference(preference ...timeseries.Column) {
	if len(preference) > 0 {
		e.preference = preference
	}
}

// BestDates sweeps every calendar date of the reference year, holding for
// daysBetween calendar days, and ranks the dates by their historical
// return statistics. averageDays > 1 applies a centered moving average
// over neighbouring dates; the swept window is extended past the year
// boundaries so boundary dates keep a full smoothing window.
//
// Dates without enough history, or whose every year hit the bad-data skip
// rule, are omitted from the results rather than failing the sweep.
func (e *Engine) BestDates(ctx context.Context, s *timeseries.Series, referenceYear, daysBetween, averageDays int) (*Sweep, error) {
	if daysBetween < 0 {
		return nil, fmt.Errorf("%w: negative holding period %d", ErrInvalidRange, daysBetween)
	}
	if averageDays < 1 {
		averageDays = 1
	}
	beforeDays := (averageDays - 1) / 2
	afterDays := averageDays - beforeDays - 1

	start := timeseries.Day(referenceYear, time.January, 1).AddDate(0, 0, -beforeDays)
	end := timeseries.Day(referenceYear, time.December, 31).AddDate(0, 0, afterDays)

	began := time.Now()
	e.logger.InfoContext(ctx, "starting best-dates sweep",
		"reference_year", referenceYear,
		"days_between", daysBetween,
		"average_days", averageDays,
		"concurrency", e.concurrency,
	)

	cells, err := e.sweepRange(ctx, s, start, end, func(buy time.Time) time.Time {
		return buy.AddDate(0, 0, daysBetween)
	})
	if err != nil {
		return nil, err
	}

	// Centers are exactly the reference-year dates; the extension exists
	// only to feed the smoothing window.
	var chronological []SweepResult
	for i := beforeDays; i < len(cells)-afterDays; i++ {
		center := cells[i]
		if center == nil {
			continue
		}
		if averageDays == 1 {
			chronological = append(chronological, *center)
			continue
		}
		chronological = append(chronological, smooth(cells[i-beforeDays:i+afterDays+1], *center))
	}
	if len(chronological) == 0 {
		return nil, fmt.Errorf("%w: year %d", ErrEmptySweep, referenceYear)
	}

	sweep := orderings(chronological)
	e.logger.InfoContext(ctx, "best-dates sweep completed",
		"reference_year", referenceYear,
		"dates", len(chronological),
		"duration", time.Since(began),
	)
	return sweep, nil
}

// SellDateScan fixes the sell date and sweeps the buy date over the
// preceding year, answering when one should have bought to sell on that
// date. The same omit-and-continue policy and orderings as BestDates
// apply.
func (e *Engine) SellDateScan(ctx context.Context, s *timeseries.Series, sellDate time.Time) (*Sweep, error) {
	sellDate = timeseries.Normalize(sellDate)
	start := shiftYears(sellDate, -1).AddDate(0, 0, 1)

	began := time.Now()
	e.logger.InfoContext(ctx, "starting sell-date scan",
		"sell_date", sellDate.Format("2006-01-02"),
		"concurrency", e.concurrency,
	)

	cells, err := e.sweepRange(ctx, s, start, sellDate, func(time.Time) time.Time {
		return sellDate
	})
	if err != nil {
		return nil, err
	}

	var chronological []SweepResult
	for _, cell := range cells {
		if cell != nil {
			chronological = append(chronological, *cell)
		}
	}
	if len(chronological) == 0 {
		return nil, fmt.Errorf("%w: sell date %s", ErrEmptySweep, sellDate.Format("2006-01-02"))
	}

	sweep := orderings(chronological)
	e.logger.InfoContext(ctx, "sell-date scan completed",
		"sell_date", sellDate.Format("2006-01-02"),
		"dates", len(chronological),
		"duration", time.Since(began),
	)
	return sweep, nil
}

// sweepRange runs Sample+Summarize for every calendar day in [start, end],
// mapping each buy date to its sell date. Cells are nil for omitted dates.
func (e *Engine) sweepRange(ctx context.Context, s *timeseries.Series, start, end time.Time, sellFor func(time.Time) time.Time) ([]*SweepResult, error) {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	cells := make([]*SweepResult, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, buy := range dates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sell := sellFor(buy)
			observations, err := Sample(s, buy, sell, e.preference...)
			if err != nil {
				if omittable(err) {
					return nil
				}
				return fmt.Errorf("sweep %s: %w", buy.Format("2006-01-02"), err)
			}
			summary, err := Summarize(observations)
			if err != nil {
				if omittable(err) {
					return nil
				}
				return fmt.Errorf("summarize %s: %w", buy.Format("2006-01-02"), err)
			}
			cells[i] = &SweepResult{
				BuyDate:      buy,
				SellDate:     sell,
				AvgGainRatio: summary.AvgGainRatio,
				PosGainRatio: summary.PosGainRatio,
				YearCount:    summary.YearCount,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}

// omittable reports whether a per-date failure is dropped from the sweep
// instead of aborting it.
func omittable(err error) bool {
	return errors.Is(err, ErrInsufficientData) || errors.Is(err, ErrNoTrades)
}

// smooth averages the gain statistics over one centered window. Omitted
// neighbours are excluded from the mean; the center is known present.
func smooth(window []*SweepResult, center SweepResult) SweepResult {
	var avg, pos float64
	var n int
	for _, cell := range window {
		if cell == nil {
			continue
		}
		avg += cell.AvgGainRatio
		pos += cell.PosGainRatio
		n++
	}
	center.AvgGainRatio = avg / float64(n)
	center.PosGainRatio = pos / float64(n)
	return center
}

// orderings builds the three sweep orderings from the chronological rows.
func orderings(chronological []SweepResult) *Sweep {
	byAvg := append([]SweepResult(nil), chronological...)
	sort.SliceStable(byAvg, func(i, j int) bool {
		if byAvg[i].AvgGainRatio != byAvg[j].AvgGainRatio {
			return byAvg[i].AvgGainRatio > byAvg[j].AvgGainRatio
		}
		return byAvg[i].PosGainRatio > byAvg[j].PosGainRatio
	})

	byPos := append([]SweepResult(nil), chronological...)
	sort.SliceStable(byPos, func(i, j int) bool {
		if byPos[i].PosGainRatio != byPos[j].PosGainRatio {
			return byPos[i].PosGainRatio > byPos[j].PosGainRatio
		}
		return byPos[i].AvgGainRatio > byPos[j].AvgGainRatio
	})

	return &Sweep{
		Chronological: chronological,
		ByAvgGain:     byAvg,
		ByPosGain:     byPos,
	}
}
