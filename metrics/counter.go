// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"sort"
	"strings"
)

// Counter is a set of named monotonically increasing counts.
type Counter interface {
	// Inc adds one to key.
	Inc(key string) error

	// Snapshot returns a copy of all counts.
	Snapshot() map[string]int64

	// String dumps all counts as "key: value" lines sorted by key.
	String() string
}

// Compile-time conformance.
var (
	_ Counter = (*Fixed)(nil)
	_ Counter = (*Dynamic)(nil)
)

// render formats a snapshot deterministically.
func render(snap map[string]int64) string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %d\n", k, snap[k])
	}

	return b.String()
}
