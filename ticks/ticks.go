// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes major and minor axis tick positions for
// linear, logarithmic, date/time, and categorical axes.
//
// Tickers never fail. A range that is not Valid (zero or negative
// size, or a non-finite bound) yields no ticks, and every ticker caps
// its output so that pathological step hints cannot produce unbounded
// slices. Returned tick sets are strictly increasing and majors and
// minors never share a position.
package ticks

import (
	"math"

	"github.com/aclements/go-chartcore/scale"
)

// A Ticker places ticks within a visible range.
type Ticker interface {
	// Ticks returns the major tick positions in r. approxStep is a
	// hint for the distance between ticks; its interpretation
	// depends on the ticker, and a non-positive hint selects a
	// default.
	Ticks(r scale.Range, approxStep float64) []float64

	// MinorTicks returns the minor tick positions in r given the
	// major ticks previously returned by Ticks.
	MinorTicks(r scale.Range, majors []float64) []float64
}

// Hard ceilings on the number of ticks produced.
const (
	MaxLinearTicks   = 10000
	MaxMinorTicks    = 10000
	MaxLogMajors     = 12
	MaxTimeTicks     = 1000
	MaxCategoryTicks = 1000
)

// defaultDivisions is the number of intervals a linear axis is divided
// into when no step hint is given.
const defaultDivisions = 5

// tolFrac is the tick tolerance as a fraction of the step.
const tolFrac = 1e-9

// NiceStep snaps rough to the closest value of the form m×10^n with m
// in {1, 2, 5}. It returns the step and its mantissa m. rough must be
// positive and finite; otherwise NiceStep returns 0, 0.
func NiceStep(rough float64) (step, mantissa float64) {
	rough = math.Abs(rough)
	if !(rough > 0) || math.IsInf(rough, 0) {
		return 0, 0
	}
	exp := math.Floor(math.Log10(rough))
	pow := math.Pow(10, exp)
	m := rough / pow
	switch {
	case m < 1.5:
		m = 1
	case m < 3:
		m = 2
	case m < 7:
		m = 5
	default:
		m = 1
		pow *= 10
	}
	return m * pow, m
}

// stepUp returns the next value on the 1-2-5 ladder above the nice
// step s.
func stepUp(s float64) float64 {
	step, m := NiceStep(s)
	switch m {
	case 1:
		return step * 2
	case 2:
		return step * 2.5
	}
	return step * 2
}

// ladderAtLeast returns the smallest 1-2-5 ladder value >= x.
func ladderAtLeast(x float64) float64 {
	s, _ := NiceStep(x)
	if s == 0 {
		return 0
	}
	for s < x*(1-tolFrac) {
		s = stepUp(s)
	}
	return s
}

// subdivisions returns the number of minor intervals per major
// interval of the given size: 5 for a 1 or 5 mantissa, 4 for a 2
// mantissa, and 2 for a step off the 1-2-5 ladder.
func subdivisions(step float64) int {
	nice, m := NiceStep(step)
	if nice == 0 || math.Abs(nice-step) > 1e-6*step {
		return 2
	}
	if m == 2 {
		return 4
	}
	return 5
}
