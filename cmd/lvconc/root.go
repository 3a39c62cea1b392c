// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvconc/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "LVCONC"

var errInvalidWorkers = errors.New("lvconc: workers must be > 0")

// config mirrors the viper key space.
type config struct {
	Workers int `mapstructure:"workers"`
	Log     struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Metrics  metricsConfig  `mapstructure:"metrics"`
	Pipeline pipelineConfig `mapstructure:"pipeline"`
}

// app is the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	cfg config
	log *logrus.Logger
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", matrix.DefaultWorkers)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.fixed", false)
	v.SetDefault("metrics.task_workers", 2)
	v.SetDefault("metrics.requesters", 4)
	v.SetDefault("metrics.pages", 4)
	v.SetDefault("metrics.interval", time.Second)
	v.SetDefault("metrics.duration", 10*time.Second)
	v.SetDefault("metrics.task_min", 100*time.Millisecond)
	v.SetDefault("metrics.task_max", 5*time.Second)
	v.SetDefault("metrics.request_min", 50*time.Millisecond)
	v.SetDefault("metrics.request_max", 800*time.Millisecond)

	v.SetDefault("pipeline.producers", 4)
	v.SetDefault("pipeline.max_sleep", time.Second)
	v.SetDefault("pipeline.stop_chance", 10)
	v.SetDefault("pipeline.secret", 42)
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}
	setDefaults(a.v)

	var cfgFile string
	root := &cobra.Command{
		Use:           "lvconc",
		Short:         "Parallel dense matrix multiplication and concurrency demos",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.Int("workers", matrix.DefaultWorkers, "number of pool workers")
	pf.String("log-level", "info", "log level (trace|debug|info|warn|error)")
	pf.String("log-format", "text", "log format (text|json)")
	mustBind(a.v, "workers", pf.Lookup("workers"))
	mustBind(a.v, "log.level", pf.Lookup("log-level"))
	mustBind(a.v, "log.format", pf.Lookup("log-format"))

	root.AddCommand(newMultiplyCmd(a), newMetricsCmd(a), newPipelineCmd(a))

	return root
}

// init loads the config file (if any), environment and flags into a.cfg and
// configures the logger.
func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if a.cfg.Workers <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidWorkers, a.cfg.Workers)
	}

	return a.setupLogger(cmd)
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	switch a.cfg.Log.Format {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		a.log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return fmt.Errorf("unknown log format %q", a.cfg.Log.Format)
	}
	if a.v.ConfigFileUsed() != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("config loaded")
	}

	return nil
}

// entry returns a logger entry tagged with the subcommand name.
func (a *app) entry(cmd string) *logrus.Entry {
	return a.log.WithField("cmd", cmd)
}
