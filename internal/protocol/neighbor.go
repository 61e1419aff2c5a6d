package protocol

import (
	"errors"
	"time"
)

// ErrNeighborTableFull indicates the neighbor table reached its size limit
// and a new entry was refused. Existing entries are still refreshed.
var ErrNeighborTableFull = errors.New("neighbor table full")

// Neighbor is one entry of a NeighborTable. V carries the protocol-specific
// payload (parsed CDP advertisement, stored BPDU).
type Neighbor[V any] struct {
	// Value is the protocol-specific neighbor information.
	Value V

	// Interface is the local interface the neighbor was learned on.
	Interface string

	// FirstSeen is the time the entry was created.
	FirstSeen time.Time

	// LastSeen is the time of the most recent refresh.
	LastSeen time.Time

	// HoldTime is how long the entry survives without a refresh.
	HoldTime time.Duration
}

// Expired reports whether the entry is past its hold time at now.
// An entry refreshed exactly HoldTime ago is still valid.
func (n Neighbor[V]) Expired(now time.Time) bool {
	return now.Sub(n.LastSeen) > n.HoldTime
}

// Age returns how long ago the entry was last refreshed.
func (n Neighbor[V]) Age(now time.Time) time.Duration {
	return now.Sub(n.LastSeen)
}

// NeighborTable is a keyed set of neighbors with hold-time based expiry.
//
// A table is owned by exactly one protocol instance and is not safe for
// concurrent use; the owner serializes access.
type NeighborTable[K comparable, V any] struct {
	entries map[K]*Neighbor[V]
	limit   int
}

// NewNeighborTable creates an empty table. A limit of zero or less means
// unbounded.
func NewNeighborTable[K comparable, V any](limit int) *NeighborTable[K, V] {
	return &NeighborTable[K, V]{
		entries: make(map[K]*Neighbor[V]),
		limit:   limit,
	}
}

// Upsert creates or refreshes the entry for key. It returns true when a new
// entry was created. When the table is full, new keys are refused with
// ErrNeighborTableFull.
func (t *NeighborTable[K, V]) Upsert(
	key K,
	iface string,
	value V,
	now time.Time,
	hold time.Duration,
) (bool, error) {
	if n, ok := t.entries[key]; ok {
		n.Value = value
		n.Interface = iface
		n.LastSeen = now
		n.HoldTime = hold
		return false, nil
	}

	if t.limit > 0 && len(t.entries) >= t.limit {
		return false, ErrNeighborTableFull
	}

	t.entries[key] = &Neighbor[V]{
		Value:     value,
		Interface: iface,
		FirstSeen: now,
		LastSeen:  now,
		HoldTime:  hold,
	}
	return true, nil
}

// Get returns a copy of the entry for key.
func (t *NeighborTable[K, V]) Get(key K) (Neighbor[V], bool) {
	n, ok := t.entries[key]
	if !ok {
		return Neighbor[V]{}, false
	}
	return *n, true
}

// Delete removes the entry for key and reports whether it existed.
func (t *NeighborTable[K, V]) Delete(key K) bool {
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// DeleteInterface removes every entry learned on iface and returns them.
func (t *NeighborTable[K, V]) DeleteInterface(iface string) map[K]Neighbor[V] {
	removed := make(map[K]Neighbor[V])
	for k, n := range t.entries {
		if n.Interface == iface {
			removed[k] = *n
			delete(t.entries, k)
		}
	}
	return removed
}

// Prune removes every entry expired at now and returns them.
func (t *NeighborTable[K, V]) Prune(now time.Time) map[K]Neighbor[V] {
	removed := make(map[K]Neighbor[V])
	for k, n := range t.entries {
		if n.Expired(now) {
			removed[k] = *n
			delete(t.entries, k)
		}
	}
	return removed
}

// AnyExpired reports whether at least one entry is expired at now.
func (t *NeighborTable[K, V]) AnyExpired(now time.Time) bool {
	for _, n := range t.entries {
		if n.Expired(now) {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (t *NeighborTable[K, V]) Len() int {
	return len(t.entries)
}

// Range calls fn for every entry until fn returns false. Iteration order
// is unspecified. fn must not modify the table.
func (t *NeighborTable[K, V]) Range(fn func(key K, n Neighbor[V]) bool) {
	for k, n := range t.entries {
		if !fn(k, *n) {
			return
		}
	}
}

// Clear removes all entries.
func (t *NeighborTable[K, V]) Clear() {
	clear(t.entries)
}
