// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"

	"github.com/aclements/go-chartcore/internal/approx"
	mscale "github.com/aclements/go-moremath/scale"
)

// Linear is a linear data-to-pixel scale.
type Linear struct {
	norm mscale.Linear
	out  Output
}

var _ Scale = Linear{}

// NewLinear returns a linear scale mapping [dataMin, dataMax] onto
// [pixelMin, pixelMax].
//
// If dataMin == dataMax, the domain is widened by a tiny synthetic
// span so that ToPixels never divides by zero. Non-finite arguments or
// dataMin > dataMax are an error.
func NewLinear(dataMin, dataMax, pixelMin, pixelMax float64) (Linear, error) {
	if !approx.Finite(dataMin) || !approx.Finite(dataMax) || !approx.Finite(pixelMin) || !approx.Finite(pixelMax) {
		return Linear{}, mscale.RangeErr(fmt.Sprintf("linear scale bounds must be finite: data [%g, %g], pixels [%g, %g]", dataMin, dataMax, pixelMin, pixelMax))
	}
	if dataMin > dataMax {
		return Linear{}, mscale.RangeErr(fmt.Sprintf("linear scale data bounds are inverted: [%g, %g]", dataMin, dataMax))
	}
	if dataMin == dataMax {
		dataMax = dataMin + minSpan(dataMin)
	}
	return Linear{
		norm: mscale.Linear{Min: dataMin, Max: dataMax},
		out:  Output{pixelMin, pixelMax},
	}, nil
}

func (s Linear) ToPixels(v float64) float64 {
	return s.out.Of(s.norm.Map(v))
}

func (s Linear) FromPixels(px float64) float64 {
	return s.norm.Unmap(s.out.Inverse(px))
}

func (s Linear) Domain() Range {
	return Range{s.norm.Min, s.norm.Max}
}

func (s Linear) PixelRange() (min, max float64) {
	return s.out.Min, s.out.Max
}

func (s Linear) String() string {
	return fmt.Sprintf("linear %v => [%g, %g]", s.Domain(), s.out.Min, s.out.Max)
}
