// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-moremath/stats"
)

// Range is a closed interval [Min, Max] in data space.
//
// The zero Range is degenerate. Consumers must check Valid before
// dividing by Size.
type Range struct {
	Min, Max float64
}

// NewRange returns the range spanning a and b, swapping them if
// necessary so that Min <= Max.
func NewRange(a, b float64) Range {
	if a > b {
		a, b = b, a
	}
	return Range{a, b}
}

// Size returns Max - Min. It is negative only for ranges that were
// built as a composite literal and never normalized.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

// Valid reports whether both bounds are finite and Size() > 0.
func (r Range) Valid() bool {
	return approx.Finite(r.Min) && approx.Finite(r.Max) && r.Max > r.Min
}

// Center returns the midpoint of r.
func (r Range) Center() float64 {
	return r.Min + (r.Max-r.Min)/2
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	return Range{math.Min(r.Min, o.Min), math.Max(r.Max, o.Max)}
}

// Shift returns r translated by d.
func (r Range) Shift(d float64) Range {
	return Range{r.Min + d, r.Max + d}
}

// Expand grows r on both sides by frac times its size. A zero-size
// range is grown by frac on each side instead, so that autoscaled
// constant series still get a usable span.
func (r Range) Expand(frac float64) Range {
	pad := r.Size() * frac
	if pad == 0 {
		pad = frac * math.Max(math.Abs(r.Min), 1)
	}
	return Range{r.Min - pad, r.Max + pad}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// RangeOf returns the bounds of the finite values in xs. If xs has no
// finite values, it returns the zero Range and false.
func RangeOf(xs []float64) (Range, bool) {
	var ss stats.StreamStats
	for _, x := range xs {
		if approx.Finite(x) {
			ss.Add(x)
		}
	}
	if ss.Count == 0 {
		return Range{}, false
	}
	return Range{ss.Min, ss.Max}, true
}

// ClampLogRange returns r adjusted so that it is usable as a
// logarithmic domain: both bounds are positive and finite and Max is at
// least MinLogRatio times Min.
func ClampLogRange(r Range) Range {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if !(hi > 0) || math.IsInf(hi, 1) {
		hi = 1
	}
	if !(lo > 0) || !approx.Finite(lo) {
		lo = math.Min(LogFloor, hi/MinLogRatio)
	}
	if hi < lo*MinLogRatio {
		hi = lo * MinLogRatio
	}
	return Range{lo, hi}
}
