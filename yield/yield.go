// Package yield holds the compound-interest projection used by the
// simulator and the CLI. The math is a pure function of its inputs;
// validation belongs to callers.
package yield

import "math"

// DefaultCompounding is the number of compounding periods per year
// used when the caller does not care (daily compounding).
const DefaultCompounding = 365

// Project returns the value of principal after days of daily
// compounding at apyPercent. Equivalent to
// ProjectAt(principal, apyPercent, days, DefaultCompounding).
func Project(principal, apyPercent float64, days int) float64 {
	return ProjectAt(principal, apyPercent, days, DefaultCompounding)
}

// ProjectAt compounds principal at apyPercent over days with the given
// number of compounding periods per year.
//
//	final = principal * (1 + apy/100/freq)^(days / (365/freq))
//
// apyPercent may be negative. days=0 returns principal unchanged.
// freq must be > 0; this is not checked here.
func ProjectAt(principal, apyPercent float64, days int, freq float64) float64 {
	rate := apyPercent / 100 / freq
	periods := float64(days) / (365 / freq)
	return principal * math.Pow(1+rate, periods)
}
