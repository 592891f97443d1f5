// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-moremath/vec"

// A Scale maps values in a data domain to pixel coordinates and back.
//
// Scales are immutable. When the visible range or the pixel extent
// changes, callers construct a new Scale.
type Scale interface {
	ToPixels(v float64) float64
	FromPixels(px float64) float64

	// Domain returns the data range this scale was built for.
	Domain() Range

	// PixelRange returns the pixel coordinates of Domain().Min and
	// Domain().Max, in that order. min may exceed max for inverted
	// axes.
	PixelRange() (min, max float64)
}

// PixelsOf maps each of xs through s.
func PixelsOf(s Scale, xs []float64) []float64 {
	return vec.Map(s.ToPixels, xs)
}
