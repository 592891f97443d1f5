// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartkit exercises the chart engine from the command line.
//
// Usage
//
//	chartkit ticks --kind log --min 1 --max 1e6
//	chartkit resample --in data.csv --target 500 --algo lttb
//	chartkit replay --in data.csv --width 800
//
// Input files are CSV with an x and a y column. The x column may be a
// number or an RFC 3339 time, which is converted to Unix seconds. A
// leading header row is skipped.
//
// Defaults for the replay buffer are read from a YAML config file
// given by --config, or $HOME/.chartkit.yaml if it exists:
//
//	stream:
//	  max_points: 10000
//	  max_age: 1h
//	  resample_threshold: 2000
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     = logrus.New()
)

func main() {
	cobra.OnInitialize(initConfig)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chartkit <command>",
		Short: "Chart engine tools",
		Long:  `Compute axis ticks, resample series, and replay streams through the chart engine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.chartkit.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newTicksCmd())
	cmd.AddCommand(newResampleCmd())
	cmd.AddCommand(newReplayCmd())
	return cmd
}

func setDefaults() {
	viper.SetDefault("stream.max_points", 10000)
	viper.SetDefault("stream.max_age", "0s")
	viper.SetDefault("stream.resample_threshold", 2000)
	viper.SetDefault("stream.points_per_pixel", 2)
}

func initConfig() {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.WithError(err).Debug("no home directory")
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".chartkit")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		fmt.Fprintln(os.Stderr, "Can't read config:", err)
		os.Exit(1)
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config")
}
