// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport tracks the visible region of a 2-D plot and
// implements pan and zoom.
//
// Every mutation is validated before it is applied: on error the
// viewport is unchanged. Visible ranges are not clamped to the data.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-chartcore/resample"
	"github.com/aclements/go-chartcore/scale"
	mscale "github.com/aclements/go-moremath/scale"
)

// ErrInvalidInput is returned (wrapped) for non-finite or
// non-positive arguments.
var ErrInvalidInput = errors.New("invalid viewport input")

// Point is a position in data coordinates.
type Point = resample.Point

// An Option configures a Viewport.
type Option func(*Viewport)

// OnChange registers f to be called with the new visible ranges after
// every successful mutation.
func OnChange(f func(x, y scale.Range)) Option {
	return func(v *Viewport) {
		v.onChange = append(v.onChange, f)
	}
}

// A Viewport is the visible x and y data ranges of a plot.
type Viewport struct {
	x, y     scale.Range
	onChange []func(x, y scale.Range)
}

// New returns a viewport showing x and y.
func New(x, y scale.Range, opts ...Option) (*Viewport, error) {
	if err := checkRanges(x, y); err != nil {
		return nil, err
	}
	v := &Viewport{x: x, y: y}
	for _, o := range opts {
		o(v)
	}
	return v, nil
}

// X returns the visible x range.
func (v *Viewport) X() scale.Range { return v.x }

// Y returns the visible y range.
func (v *Viewport) Y() scale.Range { return v.y }

func (v *Viewport) String() string {
	return fmt.Sprintf("x=%v y=%v", v.x, v.y)
}

func checkRanges(x, y scale.Range) error {
	if !x.Valid() {
		return fmt.Errorf("x range %v: %w", x, ErrInvalidInput)
	}
	if !y.Valid() {
		return fmt.Errorf("y range %v: %w", y, ErrInvalidInput)
	}
	return nil
}

func (v *Viewport) set(x, y scale.Range) {
	v.x, v.y = x, y
	for _, f := range v.onChange {
		f(x, y)
	}
}

// SetVisible replaces both visible ranges.
func (v *Viewport) SetVisible(x, y scale.Range) error {
	if err := checkRanges(x, y); err != nil {
		return err
	}
	v.set(x, y)
	return nil
}

// zoom scales r by factor s around p. s > 1 zooms in.
func zoom(r scale.Range, s, p float64) scale.Range {
	return scale.Range{
		Min: p - (p-r.Min)/s,
		Max: p + (r.Max-p)/s,
	}
}

// Zoom scales the visible ranges by scaleX and scaleY around pivot.
// Factors greater than 1 zoom in. The pivot keeps its relative
// position in the view.
func (v *Viewport) Zoom(scaleX, scaleY float64, pivot Point) error {
	if !(scaleX > 0) || math.IsInf(scaleX, 0) || !(scaleY > 0) || math.IsInf(scaleY, 0) {
		return fmt.Errorf("zoom factors (%v, %v): %w", scaleX, scaleY, ErrInvalidInput)
	}
	if !approx.Finite(pivot.X) || !approx.Finite(pivot.Y) {
		return fmt.Errorf("zoom pivot %v: %w", pivot, ErrInvalidInput)
	}
	x, y := zoom(v.x, scaleX, pivot.X), zoom(v.y, scaleY, pivot.Y)
	if err := checkRanges(x, y); err != nil {
		return fmt.Errorf("zoom by (%v, %v): %w", scaleX, scaleY, err)
	}
	v.set(x, y)
	return nil
}

// Pan shifts the visible ranges by dx and dy in data units.
func (v *Viewport) Pan(dx, dy float64) error {
	if !approx.Finite(dx) || !approx.Finite(dy) {
		return fmt.Errorf("pan by (%v, %v): %w", dx, dy, ErrInvalidInput)
	}
	x, y := v.x.Shift(dx), v.y.Shift(dy)
	if err := checkRanges(x, y); err != nil {
		return fmt.Errorf("pan by (%v, %v): %w", dx, dy, err)
	}
	v.set(x, y)
	return nil
}

// ZoomPixels is like Zoom, but the pivot is given in pixels and
// converted to data coordinates through xs and ys.
func (v *Viewport) ZoomPixels(scaleX, scaleY, px, py float64, xs, ys scale.Scale) error {
	return v.Zoom(scaleX, scaleY, Point{X: xs.FromPixels(px), Y: ys.FromPixels(py)})
}

// PanPixels moves the plot content by dpx and dpy pixels, as when the
// user drags it. The view moves the opposite way in data space.
func (v *Viewport) PanPixels(dpx, dpy float64, xs, ys scale.Scale) error {
	x0, _ := xs.PixelRange()
	y0, _ := ys.PixelRange()
	dx := xs.FromPixels(x0) - xs.FromPixels(x0+dpx)
	dy := ys.FromPixels(y0) - ys.FromPixels(y0+dpy)
	return v.Pan(dx, dy)
}

// AutoFit shows all finite data in xs and ys, widened to "nice"
// bounds with at most maxTicks ticks per axis. If maxTicks <= 0, 10 is
// used.
func (v *Viewport) AutoFit(xs, ys []float64, maxTicks int) error {
	xr, okx := scale.RangeOf(xs)
	yr, oky := scale.RangeOf(ys)
	if !okx || !oky {
		return fmt.Errorf("auto-fit: no finite data: %w", ErrInvalidInput)
	}
	if maxTicks <= 0 {
		maxTicks = 10
	}
	return v.SetVisible(nice(xr, maxTicks), nice(yr, maxTicks))
}

func nice(r scale.Range, maxTicks int) scale.Range {
	l := mscale.Linear{Min: r.Min, Max: r.Max}
	l.Nice(mscale.TickOptions{Max: maxTicks})
	return scale.Range{Min: l.Min, Max: l.Max}
}
