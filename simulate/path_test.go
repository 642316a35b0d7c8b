package simulate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed list of uniforms, cycling at the end.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestPathZeroDays(t *testing.T) {
	t.Parallel()

	got := Path(42.5, 0, 0.1, 0.5, NewSource())
	assert.Equal(t, []float64{42.5}, got)
}

func TestPathLength(t *testing.T) {
	t.Parallel()

	for _, days := range []int{0, 1, 7, 365} {
		got := Path(1.0, days, 0, 0.02, NewSource())
		assert.Len(t, got, days+1)
	}
}

func TestPathNegativeDays(t *testing.T) {
	t.Parallel()

	// Malformed input still yields well-defined output, never a panic.
	for _, days := range []int{-1, -2, -100} {
		got := Path(100, days, 0.1, 0.2, NewSource())
		assert.Equal(t, []float64{100}, got)
	}
}

func TestPathStartsAtStartPrice(t *testing.T) {
	t.Parallel()

	got := Path(99.0, 10, 0.05, 0.3, NewSource())
	assert.Equal(t, 99.0, got[0])
}

func TestPathDeterministicWithInjectedSource(t *testing.T) {
	t.Parallel()

	src := &seqSource{vals: []float64{0.5}} // uniform 0.5 -> shock 0
	got := Path(100, 3, 0.365, 0, src)      // dailyDrift = 0.001

	require.Len(t, got, 4)
	assert.InDelta(t, 100.0, got[0], 1e-12)
	assert.InDelta(t, 100.1, got[1], 1e-9)
	assert.InDelta(t, 100.2001, got[2], 1e-9)
	assert.InDelta(t, 100.30030010, got[3], 1e-6)
}

func TestPathShockBounds(t *testing.T) {
	t.Parallel()

	// With zero drift each step ratio must stay within 1 +/- dailyVol.
	src := rand.New(rand.NewSource(7))
	vol := 0.02
	dailyVol := vol / math.Sqrt(365)

	path := Path(1.0, 500, 0, vol, src)
	for i := 1; i < len(path); i++ {
		ratio := path[i] / path[i-1]
		assert.GreaterOrEqual(t, ratio, 1-dailyVol-1e-12)
		assert.LessOrEqual(t, ratio, 1+dailyVol+1e-12)
	}
}

func TestPathSameSeedSamePath(t *testing.T) {
	t.Parallel()

	a := Path(1.0, 30, 0.1, 0.2, rand.New(rand.NewSource(99)))
	b := Path(1.0, 30, 0.1, 0.2, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}
