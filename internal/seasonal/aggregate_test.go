package seasonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// observationsWithRatios fabricates one observation per gain ratio with a
// 100 buy price.
func observationsWithRatios(ratios ...float64) []ReturnObservation {
	obs := make([]ReturnObservation, len(ratios))
	for i, r := range ratios {
		obs[i] = ReturnObservation{
			BuyPrice:  100,
			SellPrice: 100 * (1 + r),
			Gain:      100 * r,
			GainRatio: r,
		}
	}
	return obs
}

func TestSummarize(t *testing.T) {
	t.Run("known sample", func(t *testing.T) {
		summary, err := Summarize(observationsWithRatios(0.1, 0.2, -0.05, 0.3))
		require.NoError(t, err)

		assert.Equal(t, 4, summary.YearCount)
		assert.InDelta(t, 0.1375, summary.AvgGainRatio, 1e-12)
		assert.InDelta(t, 0.75, summary.PosGainRatio, 1e-12)

		// Sample variance, divide by N-1 = 3.
		wantVariance := (math.Pow(0.1-0.1375, 2) + math.Pow(0.2-0.1375, 2) +
			math.Pow(-0.05-0.1375, 2) + math.Pow(0.3-0.1375, 2)) / 3
		assert.InDelta(t, wantVariance, summary.Variance, 1e-12)
		assert.InDelta(t, math.Sqrt(wantVariance), summary.StdDeviation, 1e-12)
	})

	t.Run("empty sample", func(t *testing.T) {
		_, err := Summarize(nil)
		assert.ErrorIs(t, err, ErrNoTrades)
	})

	t.Run("single observation has no dispersion", func(t *testing.T) {
		summary, err := Summarize(observationsWithRatios(0.1))
		require.NoError(t, err)
		assert.Equal(t, 1, summary.YearCount)
		assert.Zero(t, summary.Variance)
		assert.Zero(t, summary.StdDeviation)
	})

	t.Run("zero gain is not a win", func(t *testing.T) {
		summary, err := Summarize(observationsWithRatios(0, 0.1))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, summary.PosGainRatio, 1e-12)
	})
}

func TestSummarizeWithDispersion(t *testing.T) {
	t.Run("requires two observations", func(t *testing.T) {
		_, err := SummarizeWithDispersion(observationsWithRatios(0.1))
		assert.ErrorIs(t, err, ErrInsufficientSample)
	})

	t.Run("matches summarize", func(t *testing.T) {
		obs := observationsWithRatios(0.1, 0.2, -0.05, 0.3)
		plain, err := Summarize(obs)
		require.NoError(t, err)
		strict, err := SummarizeWithDispersion(obs)
		require.NoError(t, err)
		assert.Equal(t, plain, strict)
	})
}
