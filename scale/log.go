// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/internal/approx"
	mscale "github.com/aclements/go-moremath/scale"
)

const (
	// LogFloor is the value substituted for non-positive inputs to a
	// logarithmic transform.
	LogFloor = 1e-10

	// MinLogRatio is the smallest Max/Min ratio ClampLogRange allows.
	MinLogRatio = 1.0001
)

// Log is a logarithmic data-to-pixel scale.
type Log struct {
	min, max, base float64
	logMin, denom  float64
	out            Output
}

var _ Scale = Log{}

// NewLog returns a logarithmic scale mapping [dataMin, dataMax] onto
// [pixelMin, pixelMax].
//
// base only affects tick placement and Base(); the mapping itself is
// base-independent. It is an error for dataMin to be non-positive, for
// dataMin >= dataMax, or for base to be non-positive or 1.
func NewLog(dataMin, dataMax, pixelMin, pixelMax, base float64) (Log, error) {
	switch {
	case !approx.Finite(base) || base <= 0 || base == 1:
		return Log{}, mscale.RangeErr(fmt.Sprintf("log scale base must be positive and not 1, got %g", base))
	case !approx.Finite(dataMin) || !approx.Finite(dataMax) || !approx.Finite(pixelMin) || !approx.Finite(pixelMax):
		return Log{}, mscale.RangeErr(fmt.Sprintf("log scale bounds must be finite: data [%g, %g], pixels [%g, %g]", dataMin, dataMax, pixelMin, pixelMax))
	case dataMin <= 0:
		return Log{}, mscale.RangeErr(fmt.Sprintf("log scale minimum must be positive, got %g", dataMin))
	case dataMin >= dataMax:
		return Log{}, mscale.RangeErr(fmt.Sprintf("log scale requires min < max, got [%g, %g]", dataMin, dataMax))
	}
	s := Log{min: dataMin, max: dataMax, base: base, out: Output{pixelMin, pixelMax}}
	s.precompute()
	return s, nil
}

func (s *Log) precompute() {
	s.logMin = math.Log(s.min)
	s.denom = math.Log(s.max) - s.logMin
}

// clampPositive replaces non-positive (and NaN) inputs with a floor
// at or below the domain minimum.
func (s Log) clampPositive(v float64) float64 {
	if v > 0 {
		return v
	}
	return math.Min(LogFloor, s.min)
}

func (s Log) ToPixels(v float64) float64 {
	v = s.clampPositive(v)
	return s.out.Of((math.Log(v) - s.logMin) / s.denom)
}

func (s Log) FromPixels(px float64) float64 {
	return math.Exp(s.logMin + s.out.Inverse(px)*s.denom)
}

func (s Log) Domain() Range {
	return Range{s.min, s.max}
}

func (s Log) PixelRange() (min, max float64) {
	return s.out.Min, s.out.Max
}

// Base returns the logarithm base used for ticks.
func (s Log) Base() float64 {
	return s.base
}

func (s Log) String() string {
	return fmt.Sprintf("log%g %v => [%g, %g]", s.base, s.Domain(), s.out.Min, s.out.Max)
}
