package ledger

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVExporter writes trades to a flat file for spreadsheets and
// external tooling. It is export-only; the sqlite store remains the
// source of truth.
type CSVExporter struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVExporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "timestamp", "symbol", "side", "entry_price", "exit_price", "size", "fees", "status", "tags", "pnl"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVExporter{w, f}, nil
}

func (e *CSVExporter) WriteTrade(t Trade) error {
	err := e.w.Write([]string{
		t.ID,
		t.Timestamp.Format(time.RFC3339),
		t.Symbol,
		string(t.Side),
		f(t.EntryPrice),
		optF(t.ExitPrice),
		f(t.Size),
		f(t.Fees),
		string(t.Status),
		strings.Join(t.Tags, ";"),
		optF(t.PnL),
	})
	if err != nil {
		return err
	}

	e.w.Flush()
	return e.w.Error()
}

func (e *CSVExporter) Close() error {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return err
	}
	return e.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func optF(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
