// Package portfolio tracks named yield positions and derives
// portfolio-level blended yield.
package portfolio

import "sort"

type PositionType string

const (
	TypeHold  PositionType = "hold"
	TypeStake PositionType = "stake"
	TypeLP    PositionType = "lp"
	TypeLend  PositionType = "lend"
)

// Position is one named holding. Value is always balance*price; it is
// recomputed on every upsert rather than stored independently.
type Position struct {
	Name    string       `yaml:"name" json:"name"`
	Token   string       `yaml:"token" json:"token"`
	Balance float64      `yaml:"balance" json:"balance"`
	Price   float64      `yaml:"price" json:"price"`
	Value   float64      `yaml:"value" json:"value"`
	APY     float64      `yaml:"apy" json:"apy"`
	Type    PositionType `yaml:"type" json:"type"`
	Notes   string       `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Registry owns the position collection, keyed by name. Upsert is
// last-write-wins; Remove is idempotent; nothing expires implicitly.
type Registry struct {
	positions map[string]Position
}

// NewRegistry seeds a registry with existing positions (typically the
// persisted snapshot).
func NewRegistry(positions ...Position) *Registry {
	r := &Registry{positions: make(map[string]Position)}
	for _, p := range positions {
		r.positions[p.Name] = p
	}
	return r
}

// Upsert creates or overwrites the position under name and returns the
// stored record with Value recomputed.
func (r *Registry) Upsert(name, token string, balance, price, apy float64, typ PositionType, notes string) Position {
	p := Position{
		Name:    name,
		Token:   token,
		Balance: balance,
		Price:   price,
		Value:   balance * price,
		APY:     apy,
		Type:    typ,
		Notes:   notes,
	}
	r.positions[name] = p
	return p
}

// Remove deletes the named position. Removing an absent name is a
// no-op, not an error.
func (r *Registry) Remove(name string) {
	delete(r.positions, name)
}

// Get looks up a position by name.
func (r *Registry) Get(name string) (Position, bool) {
	p, ok := r.positions[name]
	return p, ok
}

// List returns all positions sorted by name.
func (r *Registry) List() []Position {
	out := make([]Position, 0, len(r.positions))
	for _, p := range r.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports the number of positions held.
func (r *Registry) Len() int {
	return len(r.positions)
}
