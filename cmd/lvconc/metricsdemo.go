// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/lvconc/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type metricsConfig struct {
	Fixed       bool          `mapstructure:"fixed"`
	TaskWorkers int           `mapstructure:"task_workers"`
	Requesters  int           `mapstructure:"requesters"`
	Pages       int           `mapstructure:"pages"`
	Interval    time.Duration `mapstructure:"interval"`
	Duration    time.Duration `mapstructure:"duration"`
	TaskMin     time.Duration `mapstructure:"task_min"`
	TaskMax     time.Duration `mapstructure:"task_max"`
	RequestMin  time.Duration `mapstructure:"request_min"`
	RequestMax  time.Duration `mapstructure:"request_max"`
}

func taskKey(idx int) string  { return fmt.Sprintf("call.thread.worker.%d", idx) }
func pageKey(page int) string { return fmt.Sprintf("req.page.%d", page) }

// demoKeys lists every key the demo can increment, for metrics.Fixed.
func demoKeys(cfg metricsConfig) []string {
	keys := make([]string, 0, cfg.TaskWorkers+cfg.Pages)
	for i := range cfg.TaskWorkers {
		keys = append(keys, taskKey(i))
	}
	for p := 1; p <= cfg.Pages; p++ {
		keys = append(keys, pageKey(p))
	}

	return keys
}

func newMetricsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Run task workers and requesters that bump shared counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Metrics
			var counter metrics.Counter = metrics.NewDynamic()
			if cfg.Fixed {
				f, err := metrics.NewFixed(demoKeys(cfg)...)
				if err != nil {
					return err
				}
				counter = f
			}

			return runMetricsDemo(cmd.Context(), cfg, counter, cmd.OutOrStdout(), a.entry("metrics"))
		},
	}
	f := cmd.Flags()
	f.Bool("fixed", false, "use a fixed key set registered up front")
	f.Duration("interval", time.Second, "snapshot print interval")
	f.Duration("duration", 10*time.Second, "total run time")
	f.Int("task-workers", 2, "number of task workers")
	f.Int("requesters", 4, "number of requesters")
	mustBind(a.v, "metrics.fixed", f.Lookup("fixed"))
	mustBind(a.v, "metrics.interval", f.Lookup("interval"))
	mustBind(a.v, "metrics.duration", f.Lookup("duration"))
	mustBind(a.v, "metrics.task_workers", f.Lookup("task-workers"))
	mustBind(a.v, "metrics.requesters", f.Lookup("requesters"))

	return cmd
}

// runMetricsDemo increments counter from cfg.TaskWorkers task loops and
// cfg.Requesters page requesters until cfg.Duration elapses or ctx is done,
// writing a snapshot to out every cfg.Interval and once more at the end.
// Rejected increments (unknown keys on a Fixed counter) are logged.
func runMetricsDemo(ctx context.Context, cfg metricsConfig, counter metrics.Counter, out io.Writer, log *logrus.Entry) error {
	if cfg.Interval <= 0 || cfg.Pages <= 0 {
		return fmt.Errorf("metrics: interval and pages must be > 0")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for idx := range cfg.TaskWorkers {
		key := taskKey(idx)
		g.Go(func() error {
			return tick(ctx, cfg.TaskMin, cfg.TaskMax, func() string { return key }, counter, log)
		})
	}
	for range cfg.Requesters {
		g.Go(func() error {
			next := func() string { return pageKey(1 + rand.IntN(cfg.Pages)) }
			return tick(ctx, cfg.RequestMin, cfg.RequestMax, next, counter, log)
		})
	}
	g.Go(func() error {
		t := time.NewTicker(cfg.Interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				fmt.Fprintln(out, counter)
			case <-ctx.Done():
				fmt.Fprintln(out, counter)
				return nil
			}
		}
	})

	return g.Wait()
}

// tick sleeps a random duration in [lo, hi] and increments key() until ctx
// is done.
func tick(ctx context.Context, lo, hi time.Duration, key func() string, c metrics.Counter, log *logrus.Entry) error {
	t := time.NewTimer(jitter(lo, hi))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
		k := key()
		if err := c.Inc(k); err != nil {
			log.WithError(err).WithField("key", k).Warn("metrics: increment rejected")
		}
		t.Reset(jitter(lo, hi))
	}
}

func jitter(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return max(lo, 0)
	}

	return lo + rand.N(hi-lo)
}
