// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"math"
	"testing"

	"github.com/aclements/go-chartcore/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(a, b float64) scale.Range {
	return scale.Range{Min: a, Max: b}
}

func newViewport(t *testing.T, opts ...Option) *Viewport {
	t.Helper()
	v, err := New(rng(0, 100), rng(-1, 1), opts...)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	_, err := New(rng(5, 5), rng(0, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = New(rng(0, 1), rng(0, math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// The pivot's fractional position in the view is unchanged by zooming.
func TestZoomPivotFixed(t *testing.T) {
	frac := func(r scale.Range, p float64) float64 {
		return (p - r.Min) / r.Size()
	}
	for _, test := range []struct {
		sx, sy float64
		pivot  Point
	}{
		{2, 2, Point{X: 50, Y: 0}},
		{2, 0.5, Point{X: 10, Y: 0.75}},
		{0.25, 3, Point{X: -20, Y: 5}},
		{1.1, 1.1, Point{X: 99, Y: -1}},
	} {
		v := newViewport(t)
		fx, fy := frac(v.X(), test.pivot.X), frac(v.Y(), test.pivot.Y)
		require.NoError(t, v.Zoom(test.sx, test.sy, test.pivot))
		assert.InDelta(t, fx, frac(v.X(), test.pivot.X), 1e-12, "%+v x", test)
		assert.InDelta(t, fy, frac(v.Y(), test.pivot.Y), 1e-12, "%+v y", test)
		assert.InDelta(t, 100/test.sx, v.X().Size(), 1e-9, "%+v x size", test)
		assert.InDelta(t, 2/test.sy, v.Y().Size(), 1e-12, "%+v y size", test)
	}
}

func TestZoom(t *testing.T) {
	v := newViewport(t)
	require.NoError(t, v.Zoom(2, 1, Point{X: 50, Y: 0}))
	assert.Equal(t, rng(25, 75), v.X())
	assert.Equal(t, rng(-1, 1), v.Y())
}

func TestInvalidLeavesUnchanged(t *testing.T) {
	calls := 0
	v := newViewport(t, OnChange(func(x, y scale.Range) { calls++ }))
	nan, inf := math.NaN(), math.Inf(1)
	for _, err := range []error{
		v.Zoom(0, 1, Point{X: 0, Y: 0}),
		v.Zoom(1, -2, Point{X: 0, Y: 0}),
		v.Zoom(inf, 1, Point{X: 0, Y: 0}),
		v.Zoom(nan, 1, Point{X: 0, Y: 0}),
		v.Zoom(2, 2, Point{X: nan, Y: 0}),
		v.Zoom(2, 2, Point{X: 0, Y: inf}),
		v.Pan(nan, 0),
		v.Pan(0, inf),
		v.SetVisible(rng(1, 0), rng(0, 1)),
		v.AutoFit(nil, []float64{1}, 5),
	} {
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Equal(t, rng(0, 100), v.X())
	assert.Equal(t, rng(-1, 1), v.Y())
	assert.Zero(t, calls)
}

func TestPan(t *testing.T) {
	var got []scale.Range
	v := newViewport(t, OnChange(func(x, y scale.Range) { got = append(got, x) }))
	require.NoError(t, v.Pan(10, -0.5))
	assert.Equal(t, rng(10, 110), v.X())
	assert.Equal(t, rng(-1.5, 0.5), v.Y())
	assert.Equal(t, []scale.Range{rng(10, 110)}, got)
}

func TestPixels(t *testing.T) {
	v := newViewport(t)
	xs, err := scale.NewLinear(0, 100, 0, 1000)
	require.NoError(t, err)
	ys, err := scale.NewLinear(-1, 1, 500, 0)
	require.NoError(t, err)

	// Dragging right by 100px moves the view left by 10 units.
	require.NoError(t, v.PanPixels(100, 0, xs, ys))
	assert.InDelta(t, -10, v.X().Min, 1e-9)
	assert.InDelta(t, 90, v.X().Max, 1e-9)
	assert.InDelta(t, -1, v.Y().Min, 1e-9)

	v = newViewport(t)
	require.NoError(t, v.ZoomPixels(2, 1, 250, 250, xs, ys))
	assert.InDelta(t, 12.5, v.X().Min, 1e-9)
	assert.InDelta(t, 62.5, v.X().Max, 1e-9)
}

func TestAutoFit(t *testing.T) {
	v := newViewport(t)
	xs := []float64{0.3, 4, math.NaN(), 9.7}
	ys := []float64{-3.2, 1, 7.9, math.Inf(1)}
	require.NoError(t, v.AutoFit(xs, ys, 10))
	assert.Equal(t, rng(0, 10), v.X())
	assert.LessOrEqual(t, v.Y().Min, -3.2)
	assert.GreaterOrEqual(t, v.Y().Max, 7.9)

	// A single value still yields a valid range.
	require.NoError(t, v.AutoFit([]float64{5}, []float64{5}, 0))
	assert.True(t, v.X().Valid())
	assert.True(t, v.X().Contains(5))
}
