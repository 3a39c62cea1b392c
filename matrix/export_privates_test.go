// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the resolved Options and panic messages to matrix_test ONLY.
//   - Lives in a _test.go file, so it never widens the production API.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Workers    int
	HasCounter bool
	Component  any
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Workers:    o.workers,
		HasCounter: o.counter != nil,
		Component:  o.logger.Data["component"],
	}
}

// WithBeforeCell_TestOnly installs a hook that runs on the worker before
// each cell is computed; a panicking hook simulates a failed worker.
func WithBeforeCell_TestOnly(hook func(index int)) Option {
	return func(o *Options) { o.beforeCell = hook }
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicLoggerNil_TestOnly      = panicLoggerNil
)
