// SPDX-License-Identifier: MIT
// Package metrics: sentinel error set, matched via errors.Is.

package metrics

import "errors"

var (
	// ErrUnknownKey is returned by Fixed for keys that were not registered.
	ErrUnknownKey = errors.New("metrics: key not found")

	// ErrEmptyKey is returned when a key is the empty string.
	ErrEmptyKey = errors.New("metrics: empty key")
)
