// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Output maps the unit interval onto a pixel extent. Min is the pixel
// of 0 and Max the pixel of 1; Max < Min is allowed for axes that grow
// downward.
type Output struct {
	Min, Max float64
}

// Of maps x in [0, 1] to pixel space. x outside [0, 1] extrapolates.
func (s Output) Of(x float64) float64 {
	return x*(s.Max-s.Min) + s.Min
}

// Inverse maps a pixel coordinate back to the unit interval. A
// zero-width extent maps everything to 0.
func (s Output) Inverse(px float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return (px - s.Min) / (s.Max - s.Min)
}
