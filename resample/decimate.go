// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// Decimate keeps evenly spaced points, including the first and last.
// It is the cheapest algorithm but may drop spikes.
type Decimate struct{}

func (Decimate) Info() Info {
	return Info{
		Name:           "decimate",
		PreservesShape: false,
		OptimalRange:   SizeRange{Min: 0, Max: 1000000000},
	}
}

func (Decimate) Resample(points []Point, target int) []Point {
	if out, ok := trivial(points, target); ok {
		return out
	}
	n := len(points)
	out := make([]Point, target)
	for i := range out {
		out[i] = points[i*(n-1)/(target-1)]
	}
	return out
}
