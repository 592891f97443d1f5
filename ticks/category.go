// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-chartcore/scale"
)

// Category places one tick per category at i*Spacing.
type Category struct {
	// Names are the category labels. If Count is 0, len(Names)
	// is the number of categories.
	Names []string

	// Count bounds the category indexes to [0, Count). If both
	// Count and Names are empty, indexes are unbounded.
	Count int

	// Spacing is the distance between categories. If 0, 1 is used.
	Spacing float64
}

var _ Ticker = Category{}

func (t Category) spacing() float64 {
	if t.Spacing > 0 && approx.Finite(t.Spacing) {
		return t.Spacing
	}
	return 1
}

func (t Category) count() int {
	if t.Count > 0 {
		return t.Count
	}
	return len(t.Names)
}

// Ticks returns the positions of the visible categories. approxStep is
// ignored; if more than MaxCategoryTicks categories are visible, only
// every k'th is returned.
func (t Category) Ticks(r scale.Range, approxStep float64) []float64 {
	if !r.Valid() {
		return nil
	}
	sp := t.spacing()
	eps := sp * tolFrac
	i0 := math.Ceil((r.Min - eps) / sp)
	i1 := math.Floor((r.Max + eps) / sp)
	if n := t.count(); n > 0 {
		i0 = math.Max(i0, 0)
		i1 = math.Min(i1, float64(n-1))
	}
	if !approx.Finite(i0) || !approx.Finite(i1) || i1 < i0 {
		return nil
	}
	stride := 1.0
	if n := i1 - i0 + 1; n > MaxCategoryTicks {
		stride = math.Ceil(n / MaxCategoryTicks)
		i0 = math.Ceil(i0/stride) * stride
	}
	var ticks []float64
	for i := i0; i <= i1 && len(ticks) < MaxCategoryTicks; i += stride {
		ticks = append(ticks, i*sp)
	}
	return ticks
}

// MinorTicks always returns nil. Categories have no minor ticks.
func (t Category) MinorTicks(r scale.Range, majors []float64) []float64 {
	return nil
}

// Label returns the name of the category at position v. If v is not
// the position of a named category, Label returns its index and
// false.
func (t Category) Label(v float64) (string, bool) {
	i := math.Round(v / t.spacing())
	if i >= 0 && i < float64(len(t.Names)) {
		return t.Names[int(i)], true
	}
	return strconv.FormatFloat(i, 'f', -1, 64), false
}
