package portfolio

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	name TEXT PRIMARY KEY,
	token TEXT NOT NULL,
	balance REAL NOT NULL,
	price REAL NOT NULL,
	value REAL NOT NULL,
	apy REAL NOT NULL,
	type TEXT NOT NULL,
	notes TEXT NOT NULL
);
`

// SQLiteStore persists the name -> position mapping between CLI
// invocations. It may share a database file with the trade store;
// each manages its own table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// SavePosition inserts or overwrites the row under p.Name.
func (s *SQLiteStore) SavePosition(p Position) error {
	_, err := s.db.Exec(`
		INSERT INTO positions (name, token, balance, price, value, apy, type, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			token=excluded.token, balance=excluded.balance, price=excluded.price,
			value=excluded.value, apy=excluded.apy, type=excluded.type, notes=excluded.notes`,
		p.Name, p.Token, p.Balance, p.Price, p.Value, p.APY, string(p.Type), p.Notes,
	)
	return err
}

// DeletePosition removes the named row; deleting an absent name is a
// no-op.
func (s *SQLiteStore) DeletePosition(name string) error {
	_, err := s.db.Exec(`DELETE FROM positions WHERE name = ?`, name)
	return err
}

// GetPosition returns a single position by name.
func (s *SQLiteStore) GetPosition(name string) (Position, error) {
	row := s.db.QueryRow(`
		SELECT name, token, balance, price, value, apy, type, notes
		FROM positions
		WHERE name = ?`, name)

	var p Position
	var typ string
	err := row.Scan(&p.Name, &p.Token, &p.Balance, &p.Price, &p.Value, &p.APY, &typ, &p.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return Position{}, fmt.Errorf("position %q not found", name)
		}
		return Position{}, err
	}
	p.Type = PositionType(typ)
	return p, nil
}

// ListPositions returns all positions ordered by name.
func (s *SQLiteStore) ListPositions() ([]Position, error) {
	rows, err := s.db.Query(`
		SELECT name, token, balance, price, value, apy, type, notes
		FROM positions
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var p Position
		var typ string
		if err := rows.Scan(&p.Name, &p.Token, &p.Balance, &p.Price, &p.Value, &p.APY, &typ, &p.Notes); err != nil {
			return nil, err
		}
		p.Type = PositionType(typ)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
