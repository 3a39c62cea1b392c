// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"sync/atomic"
)

// Fixed holds counters for a key set registered up front.
// The map is never written after construction, so lookups need no lock.
type Fixed struct {
	data map[string]*atomic.Int64
}

// NewFixed registers keys with a zero count. Duplicates collapse into one
// counter.
//
// Errors:
//   - ErrEmptyKey if any key is "".
func NewFixed(keys ...string) (*Fixed, error) {
	data := make(map[string]*atomic.Int64, len(keys))
	for _, k := range keys {
		if k == "" {
			return nil, ErrEmptyKey
		}
		if _, ok := data[k]; !ok {
			data[k] = new(atomic.Int64)
		}
	}

	return &Fixed{data: data}, nil
}

// Inc adds one to key. Unregistered keys fail with ErrUnknownKey.
func (f *Fixed) Inc(key string) error {
	c, ok := f.data[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	c.Add(1)

	return nil
}

// Value returns the current count of key.
func (f *Fixed) Value(key string) (int64, error) {
	c, ok := f.data[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return c.Load(), nil
}

// Len returns the number of registered keys.
func (f *Fixed) Len() int { return len(f.data) }

// Snapshot copies all counts. Counts are read one by one, so concurrent
// increments may land between reads.
func (f *Fixed) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(f.data))
	for k, c := range f.data {
		out[k] = c.Load()
	}

	return out
}

func (f *Fixed) String() string { return render(f.Snapshot()) }
