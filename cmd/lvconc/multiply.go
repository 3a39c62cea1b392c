// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvconc/matrix"
	"github.com/katalvlaran/lvconc/metrics"
	"github.com/spf13/cobra"
)

func newMultiplyCmd(a *app) *cobra.Command {
	var (
		pathA, pathB string
		debug, stats bool
	)
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply two matrices read from YAML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := a.entry("multiply")
			ma, err := loadMatrixFile(pathA)
			if err != nil {
				return err
			}
			mb, err := loadMatrixFile(pathB)
			if err != nil {
				return err
			}

			counter := metrics.NewDynamic()
			opts := []matrix.Option{matrix.WithWorkers(a.cfg.Workers), matrix.WithLogger(log)}
			if stats {
				opts = append(opts, matrix.WithCounter(counter))
			}
			c, err := matrix.Multiply(ma, mb, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if debug {
				fmt.Fprintf(out, "%#v\n", c)
			} else {
				fmt.Fprintln(out, c)
			}
			if stats {
				fmt.Fprint(cmd.ErrOrStderr(), counter)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&pathA, "a", "", "left operand (YAML)")
	cmd.Flags().StringVar(&pathB, "b", "", "right operand (YAML)")
	cmd.Flags().BoolVar(&debug, "debug-format", false, "print the product in debug form")
	cmd.Flags().BoolVar(&stats, "stats", false, "print per-worker job counts to stderr")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}
