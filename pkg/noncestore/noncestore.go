// Package noncestore persists the last nonce issued per (signer
// address, vault-scope) tuple so that callers across process restarts
// keep emitting a strictly monotonic 64-bit nonce sequence, as the RMP
// signing path requires. It adapts the teacher's Pebble-backed
// key/value store to this single narrow purpose.
package noncestore

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/uhyunpark/hyperwire/pkg/hltypes"
)

// Store is a Pebble-backed nonce ledger. Zero value is not usable; use
// Open.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if absent) the Pebble database at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("noncestore: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func key(addr hltypes.Address, vault *hltypes.Address) []byte {
	k := make([]byte, 0, 2+20+20)
	k = append(k, 'n', ':')
	k = append(k, addr[:]...)
	if vault != nil {
		k = append(k, vault[:]...)
	}
	return k
}

// NextNonce returns max(previous+1, current_wall_time_millis) for the
// given (addr, vault) tuple, persists it, and returns it. now is the
// caller-supplied wall-clock reading in Unix milliseconds, so the
// sequence stays testable without depending on the real clock.
func (s *Store) NextNonce(addr hltypes.Address, vault *hltypes.Address, now uint64) (uint64, error) {
	k := key(addr, vault)
	var previous uint64
	val, closer, err := s.db.Get(k)
	if err == nil {
		previous = binary.BigEndian.Uint64(val)
		closer.Close()
	} else if err != pebble.ErrNotFound {
		return 0, fmt.Errorf("noncestore: read previous nonce: %w", err)
	}

	next := previous + 1
	if now > next {
		next = now
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], next)
	if err := s.db.Set(k, buf[:], pebble.Sync); err != nil {
		return 0, fmt.Errorf("noncestore: persist nonce: %w", err)
	}
	return next, nil
}

// NowMillis is the wall-clock source NextNonce expects callers outside
// tests to pass.
func NowMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}

// MemStore is the same max(previous+1, now) sequence without disk
// persistence, for callers that don't need monotonicity across
// process restarts.
type MemStore struct {
	mu       sync.Mutex
	previous map[string]uint64
}

// NewMemStore returns a ready-to-use in-memory nonce ledger.
func NewMemStore() *MemStore {
	return &MemStore{previous: make(map[string]uint64)}
}

// NextNonce is MemStore's in-process equivalent of Store.NextNonce.
func (m *MemStore) NextNonce(addr hltypes.Address, vault *hltypes.Address, now uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := string(key(addr, vault))
	next := m.previous[k] + 1
	if now > next {
		next = now
	}
	m.previous[k] = next
	return next
}
