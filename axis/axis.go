// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis combines a scale, a ticker, and a label format into a
// plot axis.
package axis

import (
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/scale"
	"github.com/aclements/go-chartcore/ticks"
	mscale "github.com/aclements/go-moremath/scale"
)

// An Axis is a Kind with a visible range.
type Axis struct {
	kind    Kind
	visible scale.Range
	ticker  ticks.Ticker
	cache   *Cache
	key     string
}

// An Option configures an Axis.
type Option func(*Axis)

// WithCache makes the axis memoize ticks in c.
func WithCache(c *Cache) Option {
	return func(a *Axis) { a.cache = c }
}

// New returns an axis of the given kind showing visible.
func New(kind Kind, visible scale.Range, opts ...Option) (*Axis, error) {
	a := &Axis{kind: kind}
	switch k := kind.(type) {
	case Linear:
		a.ticker = ticks.Linear{}
	case Log:
		b := k.base()
		if !(b > 0) || b == 1 || math.IsInf(b, 0) {
			return nil, mscale.RangeErr(fmt.Sprintf("invalid log base %v", k.Base))
		}
		a.ticker = ticks.Log{Base: b}
	case DateTime:
		a.ticker = ticks.Time{Location: k.loc()}
	case Category:
		a.ticker = ticks.Category{Names: k.Names, Spacing: k.Spacing}
	default:
		panic(fmt.Sprintf("axis: unknown kind %T", kind))
	}
	for _, o := range opts {
		o(a)
	}
	if a.cache != nil {
		a.key = kindKey(kind)
	}
	if err := a.SetRange(visible); err != nil {
		return nil, err
	}
	return a, nil
}

// Kind returns the kind of a.
func (a *Axis) Kind() Kind { return a.kind }

// Range returns the visible range of a.
func (a *Axis) Range() scale.Range { return a.visible }

// Ticker returns the ticker for a's kind.
func (a *Axis) Ticker() ticks.Ticker { return a.ticker }

// SetRange sets the visible range. Log axes clamp r to positive
// values; other kinds reject invalid ranges.
func (a *Axis) SetRange(r scale.Range) error {
	if _, ok := a.kind.(Log); ok {
		r = scale.ClampLogRange(r)
	}
	if !r.Valid() {
		return mscale.RangeErr(fmt.Sprintf("invalid %v axis range %v", a.kind, r))
	}
	a.visible = r
	return nil
}

// Scale returns the scale mapping the visible range to
// [pixelMin, pixelMax].
func (a *Axis) Scale(pixelMin, pixelMax float64) (scale.Scale, error) {
	r := a.visible
	if k, ok := a.kind.(Log); ok {
		return scale.NewLog(r.Min, r.Max, pixelMin, pixelMax, k.base())
	}
	return scale.NewLinear(r.Min, r.Max, pixelMin, pixelMax)
}

// Ticks returns the major and minor ticks of the visible range.
func (a *Axis) Ticks(approxStep float64) (majors, minors []float64) {
	if a.cache != nil {
		return a.cache.Ticks(a, approxStep)
	}
	majors = a.ticker.Ticks(a.visible, approxStep)
	return majors, a.ticker.MinorTicks(a.visible, majors)
}

// A Layout is everything needed to draw an axis.
type Layout struct {
	Scale          scale.Scale
	Majors, Minors []float64

	// MajorPixels and MinorPixels are the pixel positions of
	// Majors and Minors.
	MajorPixels, MinorPixels []float64

	// Labels are the labels of Majors.
	Labels []string
}

// Layout places ticks and labels for an axis drawn from pixelMin to
// pixelMax.
func (a *Axis) Layout(pixelMin, pixelMax, approxStep float64) (*Layout, error) {
	s, err := a.Scale(pixelMin, pixelMax)
	if err != nil {
		return nil, err
	}
	majors, minors := a.Ticks(approxStep)
	return &Layout{
		Scale:       s,
		Majors:      majors,
		Minors:      minors,
		MajorPixels: scale.PixelsOf(s, majors),
		MinorPixels: scale.PixelsOf(s, minors),
		Labels:      a.Labels(majors, approxStep),
	}, nil
}
