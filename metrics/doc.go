// SPDX-License-Identifier: MIT

// Package metrics provides thread-safe named counters used as instrumentation
// around the worker pool and the demo commands.
//
// Two variants share the Counter contract:
//
//   - Fixed: the key set is registered at construction; increments are
//     lock-free atomic adds and Inc on an unregistered key fails with
//     ErrUnknownKey. Use it when the key space is known (e.g. workpool.WorkerKeys).
//   - Dynamic: a concurrent map; keys are created on first Inc.
//
// Both render as "key: value" lines sorted by key, so dumps are stable and
// diffable. Counters are shared by pointer; copying a counter value is not
// supported.
package metrics
