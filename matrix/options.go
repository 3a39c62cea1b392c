// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Multiply and Engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No hidden constants: the worker count is always an explicit, resolved value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"github.com/katalvlaran/lvconc/workpool"
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers is the number of workers used when WithWorkers is not given.
const DefaultWorkers = 4

// poolName is the "pool" log field of pools created by this package.
const poolName = "matrix"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: workers must be > 0"
	panicLoggerNil      = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int              // > 0; DefaultWorkers
	logger  *logrus.Entry    // never nil after gatherOptions
	counter workpool.Counter // optional per-worker job accounting

	// beforeCell, when set, runs on the worker ahead of each cell's dot
	// product with the cell's linear index. Set only by in-package tests.
	beforeCell func(index int)
}

// WithWorkers sets the number of workers W; output row i is routed to
// worker i mod W.
// Panics when workers <= 0.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithLogger routes matrix and pool logs to l.
// Panics when l is nil.
func WithLogger(l *logrus.Entry) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithCounter counts processed jobs per worker under workpool.WorkerKey(id).
// A nil counter disables accounting.
func WithCounter(c workpool.Counter) Option {
	return func(o *Options) { o.counter = c }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	o.logger = o.logger.WithField("component", "matrix")

	return o
}

// poolOptions translates Options into workpool options.
func (o Options) poolOptions() []workpool.Option {
	out := []workpool.Option{workpool.WithName(poolName), workpool.WithLogger(o.logger)}
	if o.counter != nil {
		out = append(out, workpool.WithCounter(o.counter))
	}

	return out
}
