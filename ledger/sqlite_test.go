package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	_, path := newTestStore(t)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteSaveAndGet(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	ts := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)
	exit := 110.5
	pnl := 21.0
	want := Trade{
		ID:         "01TRADE",
		Timestamp:  ts,
		Symbol:     "SOL",
		Side:       SideLong,
		EntryPrice: 100.0,
		ExitPrice:  &exit,
		Size:       2,
		Fees:       0.35,
		Status:     StatusClosed,
		Tags:       []string{"breakout", "scalp"},
		PnL:        &pnl,
	}

	require.NoError(t, s.SaveTrade(want))

	got, err := s.GetTrade("01TRADE")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, got.Timestamp.Equal(want.Timestamp))
	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.Side, got.Side)
	assert.InDelta(t, want.EntryPrice, got.EntryPrice, 1e-9)
	require.NotNil(t, got.ExitPrice)
	assert.InDelta(t, exit, *got.ExitPrice, 1e-9)
	assert.InDelta(t, want.Size, got.Size, 1e-9)
	assert.InDelta(t, want.Fees, got.Fees, 1e-9)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.Tags, got.Tags)
	require.NotNil(t, got.PnL)
	assert.InDelta(t, pnl, *got.PnL, 1e-9)
}

func TestSQLiteSaveOpenTradeNulls(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	want := Trade{
		ID:         "02TRADE",
		Timestamp:  time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		Symbol:     "ETH",
		Side:       SideShort,
		EntryPrice: 2000,
		Size:       0.5,
		Status:     StatusOpen,
	}

	require.NoError(t, s.SaveTrade(want))

	got, err := s.GetTrade("02TRADE")
	require.NoError(t, err)

	assert.Nil(t, got.ExitPrice)
	assert.Nil(t, got.PnL)
	assert.Empty(t, got.Tags)
}

func TestSQLiteGetTradeNotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.GetTrade("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteDuplicateIDRejected(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	tr := Trade{ID: "DUP", Timestamp: time.Now().UTC(), Symbol: "SOL", Side: SideLong, Status: StatusOpen}
	require.NoError(t, s.SaveTrade(tr))
	assert.Error(t, s.SaveTrade(tr), "primary key must reject duplicate ids")
}

func TestSQLiteListTradesOrdered(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	// insert out of order
	for _, tr := range []Trade{
		{ID: "C", Timestamp: base.Add(2 * time.Hour), Symbol: "SOL", Side: SideLong, Status: StatusOpen},
		{ID: "A", Timestamp: base, Symbol: "SOL", Side: SideLong, Status: StatusOpen},
		{ID: "B", Timestamp: base.Add(time.Hour), Symbol: "SOL", Side: SideLong, Status: StatusOpen},
	} {
		require.NoError(t, s.SaveTrade(tr))
	}

	got, err := s.ListTrades()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, "B", got[1].ID)
	assert.Equal(t, "C", got[2].ID)
}

func TestSQLiteListTradesBetween(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, s.SaveTrade(Trade{
			ID: id, Timestamp: base.Add(time.Duration(i) * time.Hour),
			Symbol: "SOL", Side: SideLong, Status: StatusOpen,
		}))
	}

	got, err := s.ListTradesBetween(base.Add(time.Hour), base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "C", got[1].ID)
}

func TestSQLiteRoundTripThroughLedger(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	l := New(nil)
	tr, err := l.Append(closedInput(time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC), "SOL", SideShort, 150, 140, 2))
	require.NoError(t, err)
	require.NoError(t, s.SaveTrade(tr))

	list, err := s.ListTrades()
	require.NoError(t, err)
	require.Len(t, list, 1)

	a := ComputeAnalytics(list, nil)
	assert.InDelta(t, 20.0, a.TotalPnL, 1e-9)
	assert.Equal(t, 1, a.Short.Count)
}
