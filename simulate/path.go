// Package simulate generates synthetic price paths and aggregates
// repeated trials into percentile summaries.
package simulate

import (
	"math"
	"math/rand"
	"time"
)

// Source supplies uniform samples in [0, 1). *rand.Rand satisfies it;
// tests inject fixed sequences for deterministic paths.
type Source interface {
	Float64() float64
}

// NewSource returns a time-seeded Source for callers that do not care
// about reproducibility.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Path walks a price forward one day at a time. Annualized drift and
// volatility are scaled to daily values (vol by sqrt of time), then
// each step applies
//
//	price = price * (1 + dailyDrift + shock)
//
// with shock drawn uniformly from [-dailyVol, dailyVol]. The returned
// slice has length days+1 and starts with startPrice; days=0 yields
// just [startPrice].
//
// This is deliberately a uniform-shock walk, not a lognormal process.
// The tracker has always modeled prices this way and downstream
// percentile output is calibrated against it.
func Path(startPrice float64, days int, driftPerYear, volPerYear float64, src Source) []float64 {
	dailyDrift := driftPerYear / 365
	dailyVol := volPerYear / math.Sqrt(365)

	// Negative days behaves like zero: no steps, just the start price.
	capHint := days + 1
	if capHint < 1 {
		capHint = 1
	}
	prices := make([]float64, 0, capHint)
	prices = append(prices, startPrice)

	price := startPrice
	for i := 0; i < days; i++ {
		shock := (src.Float64()*2 - 1) * dailyVol
		price = price * (1 + dailyDrift + shock)
		prices = append(prices, price)
	}
	return prices
}
