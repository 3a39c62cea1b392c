// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type pipelineConfig struct {
	Producers int           `mapstructure:"producers"`
	MaxSleep  time.Duration `mapstructure:"max_sleep"`
	// StopChance n makes each producer exit after a send with probability 1/n.
	StopChance int `mapstructure:"stop_chance"`
	Secret     int `mapstructure:"secret"`
}

type message struct {
	Producer int
	Value    uint64
}

func newPipelineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Fan producers into a single consumer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := runPipeline(cmd.Context(), a.cfg.Pipeline, cmd.OutOrStdout(), a.entry("pipeline"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "secret: %d\n", secret)

			return nil
		},
	}
	cmd.Flags().Int("producers", 4, "number of producers")
	mustBind(a.v, "pipeline.producers", cmd.Flags().Lookup("producers"))

	return cmd
}

// runPipeline starts cfg.Producers producers feeding one consumer. The
// consumer writes every message to out and returns cfg.Secret once all
// producers have exited and the channel is drained.
func runPipeline(ctx context.Context, cfg pipelineConfig, out io.Writer, log *logrus.Entry) (int, error) {
	if cfg.Producers <= 0 || cfg.StopChance <= 0 {
		return 0, fmt.Errorf("pipeline: producers and stop_chance must be > 0")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	msgs := make(chan message)
	done := make(chan int, 1)
	go func() {
		for m := range msgs {
			fmt.Fprintf(out, "consumer: %+v\n", m)
		}
		fmt.Fprintln(out, "consumer exit")
		done <- cfg.Secret
	}()

	g, ctx := errgroup.WithContext(ctx)
	for idx := range cfg.Producers {
		g.Go(func() error { return produce(ctx, idx, cfg, msgs, log) })
	}
	err := g.Wait()
	close(msgs)
	secret := <-done

	return secret, err
}

func produce(ctx context.Context, idx int, cfg pipelineConfig, msgs chan<- message, log *logrus.Entry) error {
	for {
		select {
		case msgs <- message{Producer: idx, Value: rand.Uint64()}:
		case <-ctx.Done():
			return ctx.Err()
		}
		if cfg.MaxSleep > 0 {
			select {
			case <-time.After(rand.N(cfg.MaxSleep)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if rand.IntN(cfg.StopChance) == 0 {
			log.WithField("producer", idx).Info("producer exit")
			return nil
		}
	}
}
