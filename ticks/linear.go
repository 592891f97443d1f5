// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-chartcore/scale"
)

// Linear places ticks at multiples of a "nice" step from the 1-2-5
// sequence.
type Linear struct {
	// MaxTicks caps the number of major ticks. If 0, MaxLinearTicks
	// is used.
	MaxTicks int
}

var _ Ticker = Linear{}

func (t Linear) maxTicks() int {
	if t.MaxTicks <= 0 || t.MaxTicks > MaxLinearTicks {
		return MaxLinearTicks
	}
	return t.MaxTicks
}

// Step returns the nice step Ticks would use for r and approxStep, or
// 0 if r is not valid.
func (t Linear) Step(r scale.Range, approxStep float64) float64 {
	if !r.Valid() {
		return 0
	}
	span := r.Size()
	rough := approxStep
	if !(rough > 0) || math.IsInf(rough, 0) {
		rough = span / defaultDivisions
	}
	step, _ := NiceStep(rough)
	if step == 0 {
		return 0
	}
	if max := float64(t.maxTicks()); span/step+1 > max {
		step, _ = NiceStep(span / max)
		for step > 0 && span/step+1 > max {
			step = stepUp(step)
		}
	}
	return step
}

// Ticks returns multiples of the nice step nearest approxStep (or
// r.Size()/5 if approxStep is not positive) that fall in r.
func (t Linear) Ticks(r scale.Range, approxStep float64) []float64 {
	step := t.Step(r, approxStep)
	if !(step > 0) || !approx.Finite(step) {
		return nil
	}
	eps := step * tolFrac
	n0 := math.Ceil((r.Min - eps) / step)
	n1 := math.Floor((r.Max + eps) / step)
	if !approx.Finite(n0) || !approx.Finite(n1) || n1 < n0 {
		return nil
	}
	count := int(math.Min(n1-n0+1, float64(t.maxTicks())))
	ticks := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		x := approx.Snap((n0+float64(i))*step, eps)
		if len(ticks) > 0 && x <= ticks[len(ticks)-1] {
			// Step is below the resolution of the bounds.
			continue
		}
		ticks = append(ticks, x)
	}
	return ticks
}

// MinorTicks subdivides the major intervals into 5 (1×10^n steps), 4
// (2×10^n) or 5 (5×10^n) parts, or 2 parts for spacings off the 1-2-5
// ladder. Minor ticks extend past the first and last majors to the
// edges of r. At least two majors are required to infer the spacing.
func (t Linear) MinorTicks(r scale.Range, majors []float64) []float64 {
	if !r.Valid() || len(majors) < 2 {
		return nil
	}
	step := majors[1] - majors[0]
	if !(step > 0) || !approx.Finite(step) {
		return nil
	}
	n := float64(subdivisions(step))
	minor := step / n
	eps := minor * tolFrac
	origin := majors[0]
	k0 := math.Ceil((r.Min - eps - origin) / minor)
	k1 := math.Floor((r.Max + eps - origin) / minor)
	if !approx.Finite(k0) || !approx.Finite(k1) || k1 < k0 || k1-k0+1 > MaxMinorTicks {
		return nil
	}
	var ticks []float64
	for k := k0; k <= k1; k++ {
		if math.Mod(k, n) == 0 {
			continue
		}
		x := approx.Snap(origin+k*minor, eps)
		if approx.Contains(majors, x, 2*eps) {
			continue
		}
		if len(ticks) > 0 && x <= ticks[len(ticks)-1] {
			continue
		}
		ticks = append(ticks, x)
	}
	return ticks
}
