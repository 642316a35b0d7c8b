package ledger

import (
	"fmt"
	"time"

	"github.com/rustyeddy/yieldtrack/pkg/id"
)

// Ledger owns the trade collection. Append is the only mutation; there
// is no edit or delete.
type Ledger struct {
	gen    id.Generator
	trades []Trade
}

// New returns a ledger seeded with existing trades (typically the
// persisted snapshot). A nil generator falls back to ULIDs.
func New(gen id.Generator, trades ...Trade) *Ledger {
	if gen == nil {
		gen = id.NewULID()
	}
	l := &Ledger{gen: gen}
	l.trades = append(l.trades, trades...)
	return l
}

// Append validates the input, assigns a fresh id, computes realized
// P&L for closed trades and records the result. The stored trade is
// returned so callers can persist or display it.
func (l *Ledger) Append(in TradeInput) (Trade, error) {
	if err := in.validate(); err != nil {
		return Trade{}, fmt.Errorf("append trade: %w", err)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	t := Trade{
		ID:         l.gen.NewID(),
		Timestamp:  ts,
		Symbol:     in.Symbol,
		Side:       in.Side,
		EntryPrice: in.EntryPrice,
		ExitPrice:  in.ExitPrice,
		Size:       in.Size,
		Fees:       in.Fees,
		Status:     in.Status,
		Tags:       append([]string(nil), in.Tags...),
	}

	if t.Status == StatusClosed {
		pnl := RealizedPnL(t.Side, t.EntryPrice, *t.ExitPrice, t.Size)
		t.PnL = &pnl
	}

	l.trades = append(l.trades, t)
	return t, nil
}

// Trades returns a copy of the history in append order.
func (l *Ledger) Trades() []Trade {
	out := make([]Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

// Len reports the number of recorded trades.
func (l *Ledger) Len() int {
	return len(l.trades)
}
