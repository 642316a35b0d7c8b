package simulate

import (
	"sort"

	"github.com/rustyeddy/yieldtrack/yield"
)

// Stable profile used for every trial: no drift, 2% annualized
// volatility. The point of the simulation is the yield projection
// with a small price wobble around it, not a market model.
const (
	stableDrift = 0.0
	stableVol   = 0.02
)

// Trial is the outcome of a single simulated run.
type Trial struct {
	YieldComponent float64 `yaml:"yield_component" json:"yield_component"`
	PriceReturn    float64 `yaml:"price_return" json:"price_return"`
	TotalValue     float64 `yaml:"total_value" json:"total_value"`
	ROI            float64 `yaml:"roi" json:"roi"`
}

// Summary holds the trials sitting at the 5th, 25th, 50th, 75th and
// 95th percentile of total value. TotalValue is non-decreasing from
// Worst to Best.
type Summary struct {
	Worst  Trial `yaml:"worst" json:"worst"`
	P25    Trial `yaml:"p25" json:"p25"`
	Median Trial `yaml:"median" json:"median"`
	P75    Trial `yaml:"p75" json:"p75"`
	Best   Trial `yaml:"best" json:"best"`
}

// RunTrials simulates trialCount price paths under the stable profile
// and combines each with the compounded yield projection:
//
//	yieldComponent = project(principal, apy, days) - principal
//	priceReturn    = principal * (terminalPrice - 1)   // path starts at 1.0
//	totalValue     = principal + yieldComponent + priceReturn
//
// Percentiles are nearest-rank over total value sorted ascending: the
// element at index floor(trialCount*rank), no interpolation. More
// trials give tighter percentiles; 1000+ is a sensible floor but
// nothing is enforced. Inputs are not validated either — negative
// principal or days produce well-defined arithmetic, and judging
// whether that arithmetic means anything is the caller's job.
func RunTrials(principal, apyPercent float64, days, trialCount int, src Source) Summary {
	yieldComponent := yield.Project(principal, apyPercent, days) - principal

	trials := make([]Trial, 0, trialCount)
	for i := 0; i < trialCount; i++ {
		path := Path(1.0, days, stableDrift, stableVol, src)
		terminal := path[len(path)-1]

		priceReturn := principal * (terminal - 1)
		total := principal + yieldComponent + priceReturn

		trials = append(trials, Trial{
			YieldComponent: yieldComponent,
			PriceReturn:    priceReturn,
			TotalValue:     total,
			ROI:            (total - principal) / principal * 100,
		})
	}

	sort.Slice(trials, func(i, j int) bool {
		return trials[i].TotalValue < trials[j].TotalValue
	})

	return Summary{
		Worst:  trials[rankIndex(trialCount, 0.05)],
		P25:    trials[rankIndex(trialCount, 0.25)],
		Median: trials[rankIndex(trialCount, 0.50)],
		P75:    trials[rankIndex(trialCount, 0.75)],
		Best:   trials[rankIndex(trialCount, 0.95)],
	}
}

func rankIndex(n int, rank float64) int {
	i := int(float64(n) * rank)
	if i >= n {
		i = n - 1
	}
	return i
}
