// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// maxFitAttempts bounds the number of times Fit widens the step.
const maxFitAttempts = 16

// DefaultFace returns the Go Regular font at the given point size and
// 72 DPI, so that one point is one pixel.
func DefaultFace(size float64) (font.Face, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
}

// Fit lays out a horizontal axis so that no two major labels, as
// measured in face, are closer than gap pixels. Starting from
// approxStep, it doubles the tick spacing until the labels fit.
// Category axes cannot be thinned and are returned as laid out.
func (a *Axis) Fit(face font.Face, pixelMin, pixelMax, approxStep, gap float64) (*Layout, error) {
	step := approxStep
	var l *Layout
	for i := 0; i < maxFitAttempts; i++ {
		var err error
		l, err = a.Layout(pixelMin, pixelMax, step)
		if err != nil {
			return nil, err
		}
		if _, ok := a.kind.(Category); ok || len(l.Majors) < 2 || !overlaps(face, l, gap) {
			break
		}
		step = 2 * a.spacing(l.Majors)
	}
	return l, nil
}

// spacing returns the distance between majors in the units the
// kind's ticker takes as a step hint.
func (a *Axis) spacing(majors []float64) float64 {
	if k, ok := a.kind.(Log); ok {
		s := math.Log(majors[1]/majors[0]) / math.Log(k.base())
		if s < 1 {
			return 1
		}
		return math.Round(s)
	}
	return majors[1] - majors[0]
}

// overlaps reports whether any two adjacent labels in l, centered on
// their ticks, are closer than gap.
func overlaps(face font.Face, l *Layout, gap float64) bool {
	prev := -1.0
	for i, label := range l.Labels {
		w := float64(font.MeasureString(face, label).Ceil())
		if i > 0 {
			dist := math.Abs(l.MajorPixels[i] - l.MajorPixels[i-1])
			if dist < (prev+w)/2+gap {
				return true
			}
		}
		prev = w
	}
	return false
}
