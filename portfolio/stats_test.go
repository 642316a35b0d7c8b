package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBlendedAPYValueWeighted(t *testing.T) {
	t.Parallel()

	positions := []Position{
		{Name: "a", Value: 100, APY: 10},
		{Name: "b", Value: 300, APY: 20},
	}

	s := Compute(positions)

	assert.InDelta(t, 400.0, s.TotalValue, 1e-9)
	require.NotNil(t, s.BlendedAPY)
	// value-weighted: (100*10 + 300*20) / 400 = 17.5, not the 15.0 a
	// simple mean would give
	assert.InDelta(t, 17.5, *s.BlendedAPY, 1e-9)
}

func TestComputeDailyYield(t *testing.T) {
	t.Parallel()

	s := Compute([]Position{{Value: 3650, APY: 10}})

	// 3650 * 10% / 365 = 1 per day
	assert.InDelta(t, 1.0, s.TotalDailyYield, 1e-9)
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	s := Compute(nil)

	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.TotalDailyYield)
	assert.Nil(t, s.BlendedAPY)
}

func TestComputeZeroValueNoBlendedAPY(t *testing.T) {
	t.Parallel()

	s := Compute([]Position{{Name: "dust", Value: 0, APY: 50}})

	assert.Zero(t, s.TotalValue)
	assert.Nil(t, s.BlendedAPY)
}
