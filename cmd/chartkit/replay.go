// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/aclements/go-chartcore/stream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReplayCmd() *cobra.Command {
	var (
		in    string
		batch int
		width int
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Stream a CSV series through a windowed buffer",
		Long: `Append x,y rows to a streaming buffer in batches and report
the buffer size and render size after each batch. The window is
configured by the stream.* config keys and measured from the newest
point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(in)
			if err != nil {
				return err
			}
			defer f.Close()
			pts, err := readPoints(f)
			if err != nil {
				return err
			}

			cfg := stream.Config{
				MaxPointCount:         viper.GetInt("stream.max_points"),
				MaxAge:                viper.GetDuration("stream.max_age"),
				AutoResampleThreshold: viper.GetInt("stream.resample_threshold"),
				PointsPerPixel:        viper.GetFloat64("stream.points_per_pixel"),
				AgeFromNewest:         true,
				Logger:                log.WithField("in", in),
			}
			buf := stream.New(cfg)

			reg := prometheus.NewRegistry()
			m, err := stream.NewMetrics(reg, in)
			if err != nil {
				return err
			}
			buf.Subscribe(m.Observe)

			if batch <= 0 {
				batch = 1
			}
			out := cmd.OutOrStdout()
			for len(pts) > 0 {
				n := batch
				if n > len(pts) {
					n = len(pts)
				}
				buf.AppendBatch(pts[:n])
				pts = pts[n:]

				age, _ := buf.OldestAge()
				fmt.Fprintf(out, "points=%d render=%d span=%v\n",
					buf.PointCount(), len(buf.RenderData(width)), age)
			}

			st := buf.Stats()
			log.WithFields(logrus.Fields{
				"count": st.Count,
				"mean":  st.Mean(),
				"min":   st.Min,
				"max":   st.Max,
			}).Debug("final buffer")
			return printMetrics(cmd, reg)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "-", "Input CSV file (- for stdin)")
	cmd.Flags().IntVarP(&batch, "batch", "b", 100, "Rows per append")
	cmd.Flags().IntVarP(&width, "width", "w", 800, "Plot width in pixels")
	return cmd
}

// printMetrics writes the values of all metrics in reg.
func printMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	sort.Slice(mfs, func(i, j int) bool { return mfs[i].GetName() < mfs[j].GetName() })
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				v = g.GetValue()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", mf.GetName(), v)
		}
	}
	return nil
}
