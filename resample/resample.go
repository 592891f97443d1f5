// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample reduces large series to a bounded number of points
// for rendering.
//
// All algorithms return a subsequence of their input (they never
// synthesize points) and run in time linear in the input.
package resample

import "fmt"

// A Point is one sample of a series.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A Resampler reduces points to at most target points.
//
// Resample must return an empty slice if target <= 0 and must return
// points itself if len(points) <= target.
type Resampler interface {
	Resample(points []Point, target int) []Point
	Info() Info
}

// Info describes a Resampler for callers choosing among algorithms.
type Info struct {
	Name string

	// PreservesShape indicates the algorithm keeps visually
	// significant extrema.
	PreservesShape bool

	// OptimalRange is the range of input sizes the algorithm is
	// intended for.
	OptimalRange SizeRange
}

// SizeRange is an inclusive range of point counts.
type SizeRange struct {
	Min, Max int
}

// Result is the outcome of Run.
type Result struct {
	Points         []Point
	OriginalCount  int
	ResampledCount int
}

// Run resamples points to target with r and records the sizes.
func Run(r Resampler, points []Point, target int) Result {
	out := r.Resample(points, target)
	return Result{
		Points:         out,
		OriginalCount:  len(points),
		ResampledCount: len(out),
	}
}

// ByName returns the resampler with the given Info name.
func ByName(name string) (Resampler, error) {
	for _, r := range All {
		if r.Info().Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown resampler %q", name)
}

// All lists the available resamplers.
var All = []Resampler{LTTB{}, MinMax{}, Decimate{}}

// trivial handles the cases shared by every algorithm. It returns the
// result and true if no resampling is needed.
func trivial(points []Point, target int) ([]Point, bool) {
	n := len(points)
	switch {
	case target <= 0:
		return []Point{}, true
	case n <= target:
		return points, true
	case target == 1:
		return []Point{points[n/2]}, true
	case target == 2:
		return []Point{points[0], points[n-1]}, true
	}
	return nil, false
}
