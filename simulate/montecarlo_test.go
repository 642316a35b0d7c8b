package simulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/yieldtrack/yield"
)

func TestRunTrialsPercentileOrder(t *testing.T) {
	t.Parallel()

	for _, trials := range []int{5, 50, 1000} {
		s := RunTrials(1000, 8, 365, trials, rand.New(rand.NewSource(1)))

		assert.LessOrEqual(t, s.Worst.TotalValue, s.P25.TotalValue)
		assert.LessOrEqual(t, s.P25.TotalValue, s.Median.TotalValue)
		assert.LessOrEqual(t, s.Median.TotalValue, s.P75.TotalValue)
		assert.LessOrEqual(t, s.P75.TotalValue, s.Best.TotalValue)
	}
}

func TestRunTrialsYieldComponentConstant(t *testing.T) {
	t.Parallel()

	s := RunTrials(1000, 10, 180, 100, rand.New(rand.NewSource(2)))

	want := yield.Project(1000, 10, 180) - 1000
	for _, tr := range []Trial{s.Worst, s.P25, s.Median, s.P75, s.Best} {
		assert.InDelta(t, want, tr.YieldComponent, 1e-9)
	}
}

func TestRunTrialsZeroDays(t *testing.T) {
	t.Parallel()

	// No days means no yield and no price movement: every trial is
	// exactly the principal.
	s := RunTrials(500, 12, 0, 50, rand.New(rand.NewSource(3)))

	for _, tr := range []Trial{s.Worst, s.P25, s.Median, s.P75, s.Best} {
		assert.InDelta(t, 500.0, tr.TotalValue, 1e-9)
		assert.InDelta(t, 0.0, tr.ROI, 1e-9)
	}
}

func TestRunTrialsTrialArithmetic(t *testing.T) {
	t.Parallel()

	s := RunTrials(1000, 5, 90, 200, rand.New(rand.NewSource(4)))

	for _, tr := range []Trial{s.Worst, s.Median, s.Best} {
		assert.InDelta(t, 1000+tr.YieldComponent+tr.PriceReturn, tr.TotalValue, 1e-9)
		assert.InDelta(t, (tr.TotalValue-1000)/1000*100, tr.ROI, 1e-9)
	}
}

func TestRunTrialsMedianNearProjection(t *testing.T) {
	t.Parallel()

	// Zero drift and a symmetric shock keep the median total close to
	// the pure yield projection at large trial counts.
	s := RunTrials(1000, 7, 365, 5000, rand.New(rand.NewSource(5)))

	want := yield.Project(1000, 7, 365)
	require.InEpsilon(t, want, s.Median.TotalValue, 0.02)
}

func TestRunTrialsNegativeInputsDoNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		RunTrials(-1000, -5, 30, 10, rand.New(rand.NewSource(6)))
	})
}

func TestRunTrialsNegativeDays(t *testing.T) {
	t.Parallel()

	var s Summary
	assert.NotPanics(t, func() {
		s = RunTrials(1000, 5, -2, 10, rand.New(rand.NewSource(7)))
	})

	// Negative days degrades to the zero-day case: one-element paths,
	// no price movement, total equal to principal plus the (inverse)
	// yield projection.
	want := 1000 + yield.Project(1000, 5, -2) - 1000
	for _, tr := range []Trial{s.Worst, s.Median, s.Best} {
		assert.InDelta(t, 0.0, tr.PriceReturn, 1e-9)
		assert.InDelta(t, want, tr.TotalValue, 1e-9)
	}
}
