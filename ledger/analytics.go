package ledger

import (
	"math"
	"sort"
	"time"
)

// Filter narrows the trade set before analytics run. Zero-valued
// fields are ignored; set fields are AND-composed. Tags matches when
// the trade shares at least one tag with the filter. Start/End bound
// the timestamp inclusively.
type Filter struct {
	Symbol string
	Side   Side
	Tags   []string
	Start  time.Time
	End    time.Time
}

func (f *Filter) match(t Trade) bool {
	if f == nil {
		return true
	}
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.Side != "" && t.Side != f.Side {
		return false
	}
	if len(f.Tags) > 0 && !tagsIntersect(f.Tags, t.Tags) {
		return false
	}
	if !f.Start.IsZero() && t.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.Timestamp.After(f.End) {
		return false
	}
	return true
}

func tagsIntersect(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// EquityPoint is one step of the equity-curve replay.
type EquityPoint struct {
	Timestamp       time.Time `yaml:"timestamp" json:"timestamp"`
	Equity          float64   `yaml:"equity" json:"equity"`
	Drawdown        float64   `yaml:"drawdown" json:"drawdown"`
	DrawdownPercent float64   `yaml:"drawdown_percent" json:"drawdown_percent"`
}

// SideStats is the long/short bias breakdown.
type SideStats struct {
	Count   int     `yaml:"count" json:"count"`
	Percent float64 `yaml:"percent" json:"percent"`
	PnL     float64 `yaml:"pnl" json:"pnl"`
}

// FeeStats summarizes trading costs over closed trades.
type FeeStats struct {
	TotalFees       float64 `yaml:"total_fees" json:"total_fees"`
	AvgFeePerTrade  float64 `yaml:"avg_fee_per_trade" json:"avg_fee_per_trade"`
	FeePercentOfPnL float64 `yaml:"fee_percent_of_pnl" json:"fee_percent_of_pnl"`
}

// Analytics is the full performance report over the filtered closed
// trades. Every field is zero-valued on an empty set.
type Analytics struct {
	ClosedTrades int     `yaml:"closed_trades" json:"closed_trades"`
	Wins         int     `yaml:"wins" json:"wins"`
	Losses       int     `yaml:"losses" json:"losses"`
	WinRate      float64 `yaml:"win_rate" json:"win_rate"`
	TotalPnL     float64 `yaml:"total_pnl" json:"total_pnl"`
	AvgWin       float64 `yaml:"avg_win" json:"avg_win"`
	AvgLoss      float64 `yaml:"avg_loss" json:"avg_loss"`

	// ProfitFactor is gross profit over gross loss. By convention it
	// is 0, not +Inf, when there are no losing trades.
	ProfitFactor float64 `yaml:"profit_factor" json:"profit_factor"`

	MaxDrawdown        float64       `yaml:"max_drawdown" json:"max_drawdown"`
	MaxDrawdownPercent float64       `yaml:"max_drawdown_percent" json:"max_drawdown_percent"`
	EquityCurve        []EquityPoint `yaml:"equity_curve,omitempty" json:"equity_curve,omitempty"`

	Long  SideStats `yaml:"long" json:"long"`
	Short SideStats `yaml:"short" json:"short"`

	Fees FeeStats `yaml:"fees" json:"fees"`
}

// ComputeAnalytics filters the trades, restricts to closed trades with
// realized P&L, and replays them in ascending timestamp order to build
// the equity curve, drawdown maxima and the summary statistics.
func ComputeAnalytics(trades []Trade, f *Filter) Analytics {
	var closed []Trade
	for _, t := range trades {
		if !f.match(t) {
			continue
		}
		if t.Status != StatusClosed || t.PnL == nil {
			continue
		}
		closed = append(closed, t)
	}

	var a Analytics
	a.ClosedTrades = len(closed)
	if len(closed) == 0 {
		return a
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].Timestamp.Before(closed[j].Timestamp)
	})

	var grossProfit, grossLoss float64
	var equity, peak float64

	for _, t := range closed {
		pnl := *t.PnL
		a.TotalPnL += pnl
		a.Fees.TotalFees += t.Fees

		switch {
		case pnl > 0:
			a.Wins++
			grossProfit += pnl
		case pnl < 0:
			a.Losses++
			grossLoss += pnl
		}

		switch t.Side {
		case SideLong:
			a.Long.Count++
			a.Long.PnL += pnl
		case SideShort:
			a.Short.Count++
			a.Short.PnL += pnl
		}

		equity += pnl
		if equity > peak {
			peak = equity
		}
		dd := peak - equity
		ddPct := 0.0
		if peak != 0 {
			ddPct = dd / peak * 100
		}
		if dd > a.MaxDrawdown {
			a.MaxDrawdown = dd
		}
		if ddPct > a.MaxDrawdownPercent {
			a.MaxDrawdownPercent = ddPct
		}

		a.EquityCurve = append(a.EquityCurve, EquityPoint{
			Timestamp:       t.Timestamp,
			Equity:          equity,
			Drawdown:        dd,
			DrawdownPercent: ddPct,
		})
	}

	a.WinRate = float64(a.Wins) / float64(len(closed)) * 100

	if a.Wins > 0 {
		a.AvgWin = grossProfit / float64(a.Wins)
	}
	if a.Losses > 0 {
		a.AvgLoss = grossLoss / float64(a.Losses)
	}
	if grossLoss != 0 {
		a.ProfitFactor = grossProfit / math.Abs(grossLoss)
	}

	sided := a.Long.Count + a.Short.Count
	if sided > 0 {
		a.Long.Percent = float64(a.Long.Count) / float64(sided) * 100
		a.Short.Percent = float64(a.Short.Count) / float64(sided) * 100
	}

	a.Fees.AvgFeePerTrade = a.Fees.TotalFees / float64(len(closed))
	if equity != 0 {
		a.Fees.FeePercentOfPnL = a.Fees.TotalFees / math.Abs(equity) * 100
	}

	return a
}
