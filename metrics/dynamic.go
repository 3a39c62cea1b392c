// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"
	"sync/atomic"
)

// Dynamic is a concurrent map of counters; keys appear on first Inc.
// The read lock covers the hot path (existing key); the write lock is taken
// only to insert a new key.
type Dynamic struct {
	mu   sync.RWMutex
	data map[string]*atomic.Int64
}

// NewDynamic creates an empty counter set.
func NewDynamic() *Dynamic {
	return &Dynamic{data: make(map[string]*atomic.Int64)}
}

// Inc adds one to key, creating it at zero first if needed.
func (d *Dynamic) Inc(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	d.counter(key).Add(1)

	return nil
}

func (d *Dynamic) counter(key string) *atomic.Int64 {
	d.mu.RLock()
	c, ok := d.data[key]
	d.mu.RUnlock()
	if ok {
		return c
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok = d.data[key]; !ok { // another writer may have won
		c = new(atomic.Int64)
		d.data[key] = c
	}

	return c
}

// Value returns the count of key, zero when absent.
func (d *Dynamic) Value(key string) int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if c, ok := d.data[key]; ok {
		return c.Load()
	}

	return 0
}

// Len returns the number of keys seen so far.
func (d *Dynamic) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.data)
}

// Snapshot copies all counts.
func (d *Dynamic) Snapshot() map[string]int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]int64, len(d.data))
	for k, c := range d.data {
		out[k] = c.Load()
	}

	return out
}

func (d *Dynamic) String() string { return render(d.Snapshot()) }
