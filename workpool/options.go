// SPDX-License-Identifier: MIT

// Package workpool: functional configuration for Pool.
//   - Option / Options follow the same shape as matrix options.
//   - Invalid option values are programmer errors and panic with a stable message.

package workpool

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// DefaultName is the value of the "pool" log field when WithName is not used.
const DefaultName = "workpool"

// workerKeyPrefix prefixes the per-worker counter keys (see WorkerKey).
const workerKeyPrefix = "workpool.worker."

const panicNilLogger = "workpool: WithLogger: logger must not be nil"

// Counter receives one increment per processed job, keyed by WorkerKey(id).
// metrics.Fixed and metrics.Dynamic satisfy it.
type Counter interface {
	Inc(key string) error
}

// Option mutates Options.
type Option func(*Options)

// Options is the resolved pool configuration.
type Options struct {
	name    string
	logger  *logrus.Entry
	counter Counter
}

// WithName sets the "pool" field attached to every log line of the pool.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

// WithLogger routes pool logs to l. Lifecycle events are logged at Debug,
// recovered panics at Error.
func WithLogger(l *logrus.Entry) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithCounter enables per-worker job accounting.
// Increment failures (e.g. unregistered keys on a fixed counter) are logged
// at Debug and never fail the job.
func WithCounter(c Counter) Option {
	return func(o *Options) { o.counter = c }
}

// WorkerKey returns the counter key used for worker id.
func WorkerKey(id int) string {
	return workerKeyPrefix + strconv.Itoa(id)
}

// WorkerKeys lists the counter keys of a pool with n workers, in worker order.
// Use it to register a fixed-key counter up front.
func WorkerKeys(n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, WorkerKey(i))
	}

	return keys
}

func gatherOptions(opts ...Option) Options {
	o := Options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	o.logger = o.logger.WithField("pool", o.name)

	return o
}
