// SPDX-License-Identifier: MIT

// Command lvconc multiplies matrices on a worker pool and hosts the
// concurrency demos that exercise the metrics counters.
//
// Usage:
//
//	lvconc multiply --a a.yaml --b b.yaml [--workers 8] [--stats]
//	lvconc metrics  [--fixed] [--interval 1s] [--duration 10s]
//	lvconc pipeline [--producers 4]
//
// Every flag can also come from a YAML file (--config) or from LVCONC_*
// environment variables, e.g. LVCONC_WORKERS=8 or LVCONC_LOG_LEVEL=debug.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
