// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-chartcore/scale"
)

// Log places major ticks at integer powers of Base.
//
// Non-positive range bounds are clamped with scale.ClampLogRange. If
// no power of Base lies within the range, Ticks falls back to the
// Linear ticker.
type Log struct {
	// Base is the logarithm base. If 0, base 10 is used. A base
	// below 1 has the same integer powers as its reciprocal and is
	// treated as 1/Base.
	Base float64

	// MaxMajors caps the number of major powers. If the range spans
	// more powers, the stride between powers widens. If 0,
	// MaxLogMajors is used.
	MaxMajors int
}

var _ Ticker = Log{}

func (t Log) base() float64 {
	switch {
	case t.Base == 0:
		return 10
	case t.Base > 0 && t.Base < 1:
		return 1 / t.Base
	}
	return t.Base
}

func (t Log) validBase() bool {
	b := t.base()
	return b > 1 && approx.Finite(b)
}

func (t Log) maxMajors() float64 {
	if t.MaxMajors <= 0 {
		return MaxLogMajors
	}
	return float64(t.MaxMajors)
}

// powers returns the range of exponents whose power lies in r, which
// must already be clamped.
func (t Log) powers(r scale.Range) (k0, k1 float64) {
	lb := math.Log(t.base())
	lo, hi := math.Log(r.Min)/lb, math.Log(r.Max)/lb
	slack := 1e-9 * math.Max(1, math.Abs(hi-lo))
	return math.Ceil(lo - slack), math.Floor(hi + slack)
}

func (t Log) pow(k float64) float64 {
	return math.Pow(t.base(), k)
}

// Ticks returns the powers of Base in r. If approxStep >= 1, it is
// taken as the stride between exponents.
func (t Log) Ticks(r scale.Range, approxStep float64) []float64 {
	if !r.Valid() || !t.validBase() {
		return nil
	}
	r = scale.ClampLogRange(r)
	k0, k1 := t.powers(r)
	if k1 < k0 {
		return Linear{}.Ticks(r, 0)
	}

	stride := 1.0
	if approxStep >= 1 && approx.Finite(approxStep) {
		stride = math.Floor(approxStep)
	}
	if n := k1 - k0 + 1; n/stride > t.maxMajors() {
		stride = math.Ceil(n / t.maxMajors())
	}

	// Align to multiples of the stride so the set of powers does
	// not change while panning.
	start := math.Ceil(k0/stride) * stride
	var ticks []float64
	for k := start; k <= k1; k += stride {
		ticks = append(ticks, t.pow(k))
	}
	if len(ticks) == 0 {
		ticks = append(ticks, t.pow(k0))
	}
	return ticks
}

// numMultipliers returns len(t.multipliers()) without building the
// slice.
func (t Log) numMultipliers() float64 {
	switch b := t.base(); b {
	case 10:
		return 8
	case 2:
		return 1
	default:
		return math.Max(0, math.Ceil(b)-2)
	}
}

// multipliers returns the minor tick multipliers within one power of
// the base: the integers 2 <= m < Base, except 1.5 for base 2.
// Callers must bound numMultipliers first.
func (t Log) multipliers() []float64 {
	b := t.base()
	switch b {
	case 10:
		return []float64{2, 3, 4, 5, 6, 7, 8, 9}
	case 2:
		return []float64{1.5}
	}
	n := int(t.numMultipliers())
	ms := make([]float64, n)
	for i := range ms {
		ms[i] = float64(i + 2)
	}
	return ms
}

// stride infers the exponent stride between consecutive majors. It
// returns 0 if the majors are not powers of the base.
func (t Log) stride(majors []float64) float64 {
	if len(majors) < 2 || !(majors[0] > 0) {
		return 1
	}
	s := math.Log(majors[1]/majors[0]) / math.Log(t.base())
	rs := math.Round(s)
	if rs < 1 || math.Abs(s-rs) > 1e-6 {
		return 0
	}
	return rs
}

// MinorTicks returns intermediate multiples of each power of Base
// (2..9 for base 10, 1.5 for base 2). When the majors skip powers,
// the skipped powers are returned instead.
func (t Log) MinorTicks(r scale.Range, majors []float64) []float64 {
	if !r.Valid() || !t.validBase() {
		return nil
	}
	r = scale.ClampLogRange(r)
	lb := math.Log(t.base())
	k0 := math.Floor(math.Log(r.Min) / lb)
	k1 := math.Ceil(math.Log(r.Max) / lb)
	stride := t.stride(majors)
	nmult := t.numMultipliers()
	if stride > 1 {
		nmult = 0
	}
	if (k1-k0+1)*(nmult+1) > MaxMinorTicks {
		return nil
	}
	var mult []float64
	if nmult > 0 {
		mult = t.multipliers()
	}

	const rel = 1e-9
	in := func(v float64) bool {
		tol := v * rel
		return v >= r.Min-tol && v <= r.Max+tol && !approx.ContainsRel(majors, v, rel)
	}
	var ticks []float64
	for k := k0; k <= k1; k++ {
		p := t.pow(k)
		if stride > 1 {
			if math.Mod(k, stride) != 0 && in(p) {
				ticks = append(ticks, p)
			}
			continue
		}
		for _, m := range mult {
			if v := p * m; in(v) {
				ticks = append(ticks, v)
			}
		}
	}
	return ticks
}
