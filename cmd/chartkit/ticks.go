// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aclements/go-chartcore/axis"
	"github.com/aclements/go-chartcore/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTicksCmd() *cobra.Command {
	var (
		kindName string
		minStr   string
		maxStr   string
		step     float64
		pixels   float64
		fit      bool
		fontSize float64
		names    []string
		minor    bool
	)

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks and labels of an axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := axis.ParseKind(kindName)
			if err != nil {
				return err
			}
			if c, ok := kind.(axis.Category); ok {
				c.Names = names
				kind = c
			}
			lo, err := parseX(minStr)
			if err != nil {
				return fmt.Errorf("--min: %w", err)
			}
			hi, err := parseX(maxStr)
			if err != nil {
				return fmt.Errorf("--max: %w", err)
			}
			a, err := axis.New(kind, scale.Range{Min: lo, Max: hi})
			if err != nil {
				return err
			}

			var l *axis.Layout
			if fit {
				face, err := axis.DefaultFace(fontSize)
				if err != nil {
					return err
				}
				l, err = a.Fit(face, 0, pixels, step, fontSize/2)
				if err != nil {
					return err
				}
			} else if l, err = a.Layout(0, pixels, step); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"kind":   kind,
				"range":  a.Range(),
				"majors": len(l.Majors),
				"minors": len(l.Minors),
			}).Debug("laid out axis")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for i, x := range l.Majors {
				fmt.Fprintf(w, "major\t%g\t%.1f\t%s\n", x, l.MajorPixels[i], l.Labels[i])
			}
			if minor {
				for i, x := range l.Minors {
					fmt.Fprintf(w, "minor\t%g\t%.1f\t\n", x, l.MinorPixels[i])
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "linear", "Axis kind: linear, log, time, or category")
	cmd.Flags().StringVar(&minStr, "min", "0", "Visible minimum (number or RFC 3339 time)")
	cmd.Flags().StringVar(&maxStr, "max", "1", "Visible maximum (number or RFC 3339 time)")
	cmd.Flags().Float64Var(&step, "step", 0, "Approximate tick step (0 for automatic)")
	cmd.Flags().Float64Var(&pixels, "pixels", 800, "Axis length in pixels")
	cmd.Flags().BoolVar(&fit, "fit", false, "Widen the step until labels do not overlap")
	cmd.Flags().Float64Var(&fontSize, "font-size", 12, "Label font size for --fit")
	cmd.Flags().StringSliceVar(&names, "names", nil, "Category names")
	cmd.Flags().BoolVar(&minor, "minor", false, "Also print minor ticks")
	return cmd
}
