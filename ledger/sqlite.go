package ledger

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the trade mapping (id -> trade) between CLI
// invocations. Single-writer access is assumed; the store does not
// arbitrate concurrent writers.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveTrade(t Trade) error {
	var exit, pnl sql.NullFloat64
	if t.ExitPrice != nil {
		exit = sql.NullFloat64{Float64: *t.ExitPrice, Valid: true}
	}
	if t.PnL != nil {
		pnl = sql.NullFloat64{Float64: *t.PnL, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO trades
		(id, ts, symbol, side, entry_price, exit_price, size, fees, status, tags, pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Timestamp, t.Symbol, string(t.Side), t.EntryPrice,
		exit, t.Size, t.Fees, string(t.Status), strings.Join(t.Tags, ","), pnl,
	)
	return err
}

// GetTrade returns a single trade by id.
func (s *SQLiteStore) GetTrade(tradeID string) (Trade, error) {
	row := s.db.QueryRow(`
		SELECT id, ts, symbol, side, entry_price, exit_price, size, fees, status, tags, pnl
		FROM trades
		WHERE id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns the full history in ascending timestamp order.
func (s *SQLiteStore) ListTrades() ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, ts, symbol, side, entry_price, exit_price, size, fees, status, tags, pnl
		FROM trades
		ORDER BY ts ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTradesBetween returns trades whose timestamp is within
// [start, end] inclusive, ascending.
func (s *SQLiteStore) ListTradesBetween(start, end time.Time) ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, ts, symbol, side, entry_price, exit_price, size, fees, status, tags, pnl
		FROM trades
		WHERE ts >= ? AND ts <= ?
		ORDER BY ts ASC, id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (Trade, error) {
	var t Trade
	var side, status, tags string
	var exit, pnl sql.NullFloat64

	err := row.Scan(
		&t.ID,
		&t.Timestamp,
		&t.Symbol,
		&side,
		&t.EntryPrice,
		&exit,
		&t.Size,
		&t.Fees,
		&status,
		&tags,
		&pnl,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Side = Side(side)
	t.Status = Status(status)
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	if exit.Valid {
		t.ExitPrice = &exit.Float64
	}
	if pnl.Valid {
		t.PnL = &pnl.Float64
	}
	return t, nil
}
