// Package ledger keeps the append-only trade history and computes
// performance analytics over it. Records are never edited in place; a
// correction is a new trade.
package ledger

import (
	"fmt"
	"time"
)

type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Trade is a single ledger entry. ExitPrice and PnL are set iff the
// trade is closed; open trades carry neither. Once closed a trade
// never reopens.
type Trade struct {
	ID        string    `yaml:"id" json:"id"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	Symbol    string    `yaml:"symbol" json:"symbol"`
	Side      Side      `yaml:"side" json:"side"`

	EntryPrice float64  `yaml:"entry_price" json:"entry_price"`
	ExitPrice  *float64 `yaml:"exit_price,omitempty" json:"exit_price,omitempty"`
	Size       float64  `yaml:"size" json:"size"`
	Fees       float64  `yaml:"fees" json:"fees"`

	Status Status   `yaml:"status" json:"status"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Realized
	PnL *float64 `yaml:"pnl,omitempty" json:"pnl,omitempty"`
}

// TradeInput is what callers hand to Append: a trade without an id or
// realized P&L, both of which the ledger assigns.
type TradeInput struct {
	Timestamp  time.Time
	Symbol     string
	Side       Side
	EntryPrice float64
	ExitPrice  *float64
	Size       float64
	Fees       float64
	Status     Status
	Tags       []string
}

func (in TradeInput) validate() error {
	if in.Side != SideLong && in.Side != SideShort {
		return fmt.Errorf("side must be %q or %q, got %q", SideLong, SideShort, in.Side)
	}
	switch in.Status {
	case StatusClosed:
		if in.ExitPrice == nil {
			return fmt.Errorf("closed trade requires an exit price")
		}
	case StatusOpen:
		if in.ExitPrice != nil {
			return fmt.Errorf("open trade cannot carry an exit price")
		}
	default:
		return fmt.Errorf("status must be %q or %q, got %q", StatusOpen, StatusClosed, in.Status)
	}
	return nil
}

// RealizedPnL computes directional P&L for a closed trade:
// (exit - entry) * size for longs, negated for shorts.
func RealizedPnL(side Side, entry, exit, size float64) float64 {
	dir := 1.0
	if side == SideShort {
		dir = -1.0
	}
	return dir * (exit - entry) * size
}
