// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package approx provides tolerance-based float comparisons shared by
// the scale, tick, and viewport packages.
package approx

import "math"

// Finite reports whether x is neither NaN nor an infinity.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Contains reports whether some element of xs is within tol of x.
// xs must be sorted in increasing order.
func Contains(xs []float64, x, tol float64) bool {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if xs[mid] < x-tol {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(xs) && xs[lo] <= x+tol
}

// ContainsRel is like Contains, but uses a tolerance relative to the
// magnitude of x.
func ContainsRel(xs []float64, x, rel float64) bool {
	return Contains(xs, x, math.Abs(x)*rel)
}

// Snap rounds x to zero if it is within tol of zero. Tick generation
// uses it to avoid labels like "-1.3e-17".
func Snap(x, tol float64) float64 {
	if math.Abs(x) <= tol {
		return 0
	}
	return x
}
