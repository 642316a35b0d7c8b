// Package id issues trade identifiers. Ledger appends must never
// collide, even when several trades are recorded within the same
// millisecond, so plain timestamps are not enough.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces unique trade ids. The ledger takes one at
// construction so tests can substitute a counting stub.
type Generator interface {
	NewID() string
}

// ULID issues time-sortable ULIDs. The monotonic entropy source keeps
// ids strictly increasing within a single millisecond.
type ULID struct {
	mu   sync.Mutex
	mono io.Reader
}

// NewULID seeds the monotonic entropy reader from crypto/rand.
func NewULID() *ULID {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ULID{
		mono: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// NewID returns the next ULID string. Sorting ids sorts trades by
// creation time, which keeps the sqlite primary key index in insert
// order.
func (g *ULID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), g.mono)
	if err != nil {
		// Only possible if time runs backwards or entropy fails.
		panic(err)
	}
	return id.String()
}
