package portfolio

// Stats is the portfolio rollup. BlendedAPY is nil when total value is
// not positive, since a value-weighted average is undefined there.
type Stats struct {
	TotalValue      float64  `yaml:"total_value" json:"total_value"`
	TotalDailyYield float64  `yaml:"total_daily_yield" json:"total_daily_yield"`
	BlendedAPY      *float64 `yaml:"blended_apy,omitempty" json:"blended_apy,omitempty"`
}

// Compute sums position values and their daily yield, then derives the
// blended APY by weighting each position's APY by its value:
//
//	blended = sum(value*apy/100/365) * 365 / totalValue * 100
//
// An empty portfolio yields all-zero stats with no blended APY.
func Compute(positions []Position) Stats {
	var s Stats
	for _, p := range positions {
		s.TotalValue += p.Value
		s.TotalDailyYield += p.Value * p.APY / 100 / 365
	}

	if s.TotalValue > 0 {
		blended := s.TotalDailyYield * 365 / s.TotalValue * 100
		s.BlendedAPY = &blended
	}
	return s
}
