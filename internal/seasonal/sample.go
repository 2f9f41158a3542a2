package seasonal

import (
	"errors"
	"fmt"
	"time"

	"nordquant/internal/timeseries"
)

// Sample produces the cross-year return sample for one (buy date, sell
// date) pair over the instrument's full history.
//
// The pair is rewound one year at a time to the earliest anchor still
// inside the series, then walked forward year by year until the sell date
// leaves the data. Each anchor resolves both legs to the next available
// trading day; a year whose resolved buy or sell price is exactly zero is
// skipped as bad source data, not failed. Month and day are preserved
// across year shifts, with Feb 29 clamping to Feb 28 in non-leap years.
//
// The column preference defaults to close-then-value, matching realized
// trade accounting.
func Sample(s *timeseries.Series, buyDate, sellDate time.Time, preference ...timeseries.Column) ([]ReturnObservation, error) {
	buyDate = timeseries.Normalize(buyDate)
	sellDate = timeseries.Normalize(sellDate)
	if sellDate.Before(buyDate) {
		return nil, fmt.Errorf("%w: buy %s, sell %s", ErrInvalidRange,
			buyDate.Format("2006-01-02"), sellDate.Format("2006-01-02"))
	}

	if len(preference) == 0 {
		preference = timeseries.ClosePreference
	}
	col, err := s.ResolveColumn(preference...)
	if err != nil {
		return nil, err
	}

	first, err := s.FirstDate()
	if err != nil {
		return nil, err
	}
	last, err := s.LastDate()
	if err != nil {
		return nil, err
	}

	// Rewind to the earliest anchor, then step forward once. Years are not
	// exactly 365 days, so bounds are re-checked after the adjustment.
	buy, sell := buyDate, sellDate
	for buy.After(first) {
		buy = shiftYears(buy, -1)
		sell = shiftYears(sell, -1)
	}
	buy = shiftYears(buy, 1)
	sell = shiftYears(sell, 1)

	if buy.Before(first) || sell.After(last) {
		return nil, fmt.Errorf("%w: history %s..%s", ErrInsufficientData,
			first.Format("2006-01-02"), last.Format("2006-01-02"))
	}

	var observations []ReturnObservation
	for !sell.After(last) {
		obs, ok, err := observe(s, col, buy, sell)
		if err != nil {
			return nil, err
		}
		if ok {
			observations = append(observations, obs)
		}
		buy = shiftYears(buy, 1)
		sell = shiftYears(sell, 1)
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("%w: buy %s, sell %s", ErrNoTrades,
			buyDate.Format("2006-01-02"), sellDate.Format("2006-01-02"))
	}
	return observations, nil
}

// observe resolves one anchor year. A zero resolved price, or a leg with
// no nearby trading day, skips the year without failing the sample.
func observe(s *timeseries.Series, col timeseries.Column, buy, sell time.Time) (ReturnObservation, bool, error) {
	buyRec, err := s.FirstAtOrAfter(buy)
	if errors.Is(err, timeseries.ErrNotFound) {
		return ReturnObservation{}, false, nil
	}
	if err != nil {
		return ReturnObservation{}, false, err
	}
	sellRec, err := s.FirstAtOrAfter(sell)
	if errors.Is(err, timeseries.ErrNotFound) {
		return ReturnObservation{}, false, nil
	}
	if err != nil {
		return ReturnObservation{}, false, err
	}

	buyPrice := buyRec.Field(col)
	sellPrice := sellRec.Field(col)
	if buyPrice == 0 || sellPrice == 0 {
		return ReturnObservation{}, false, nil
	}

	return ReturnObservation{
		BuyDate:   buyRec.Date,
		SellDate:  sellRec.Date,
		BuyPrice:  buyPrice,
		SellPrice: sellPrice,
		Gain:      sellPrice - buyPrice,
		GainRatio: sellPrice/buyPrice - 1,
	}, true, nil
}

// shiftYears moves a calendar date by whole years, preserving month and
// day. Feb 29 clamps to Feb 28 when the target year is not a leap year.
func shiftYears(d time.Time, years int) time.Time {
	year := d.Year() + years
	day := d.Day()
	if d.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return timeseries.Day(year, d.Month(), day)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
