// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-chartcore/resample"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newResampleCmd() *cobra.Command {
	var (
		in     string
		target int
		algo   string
	)

	cmd := &cobra.Command{
		Use:   "resample",
		Short: "Downsample a CSV series",
		Long:  `Read x,y rows, reduce them to at most --target points, and write them as CSV.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resample.ByName(algo)
			if err != nil {
				return err
			}
			f, err := openInput(in)
			if err != nil {
				return err
			}
			defer f.Close()
			pts, err := readPoints(f)
			if err != nil {
				return err
			}

			res := resample.Run(r, pts, target)
			log.WithFields(logrus.Fields{
				"algo":      r.Info().Name,
				"original":  res.OriginalCount,
				"resampled": res.ResampledCount,
			}).Info("resampled")
			return writePoints(cmd.OutOrStdout(), res.Points)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "-", "Input CSV file (- for stdin)")
	cmd.Flags().IntVarP(&target, "target", "n", 1000, "Maximum number of output points")
	cmd.Flags().StringVar(&algo, "algo", "lttb", "Algorithm: lttb, minmax, or decimate")
	return cmd
}
