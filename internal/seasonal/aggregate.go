package seasonal

import (
	"fmt"
	"math"
)

// Summarize reduces a return sample to its summary statistics. Dispersion
// fields are filled when the sample is large enough and left zero
// otherwise; use SummarizeWithDispersion when variance is required.
func Summarize(observations []ReturnObservation) (ReturnSummary, error) {
	n := len(observations)
	if n == 0 {
		return ReturnSummary{}, ErrNoTrades
	}

	var sum float64
	var wins int
	for _, obs := range observations {
		sum += obs.GainRatio
		if obs.Gain > 0 {
			wins++
		}
	}

	summary := ReturnSummary{
		YearCount:    n,
		AvgGainRatio: sum / float64(n),
		PosGainRatio: float64(wins) / float64(n),
	}
	if n >= 2 {
		summary.Variance = sampleVariance(observations, summary.AvgGainRatio)
		summary.StdDeviation = math.Sqrt(summary.Variance)
	}
	return summary, nil
}

// SummarizeWithDispersion is Summarize with variance as a hard
// requirement: fewer than two observations is ErrInsufficientSample.
func SummarizeWithDispersion(observations []ReturnObservation) (ReturnSummary, error) {
	if len(observations) < 2 {
		return ReturnSummary{}, fmt.Errorf("%w: got %d", ErrInsufficientSample, len(observations))
	}
	return Summarize(observations)
}

// sampleVariance computes the N-1 variance of the gain ratios.
func sampleVariance(observations []ReturnObservation, mean float64) float64 {
	var ss float64
	for _, obs := range observations {
		d := obs.GainRatio - mean
		ss += d * d
	}
	return ss / float64(len(observations)-1)
}
