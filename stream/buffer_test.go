// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"testing"
	"time"

	"github.com/aclements/go-chartcore/resample"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kind(k EventKind) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

func fixedClock(sec float64) func() time.Time {
	return func() time.Time {
		return time.Unix(0, int64(sec*1e9))
	}
}

func xs(ps []Point) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.X
	}
	return out
}

func TestEvictByCount(t *testing.T) {
	b := New(Config{MaxPointCount: 3})
	var rec recorder
	b.Subscribe(rec.listen)

	b.AppendBatch([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}})
	assert.Equal(t, 3, b.PointCount())
	assert.Equal(t, []float64{3, 4, 5}, xs(b.Points()))
	require.Len(t, rec.kind(Removed), 1)
	assert.Equal(t, Event{Kind: Removed, Count: 2, Total: 3}, rec.kind(Removed)[0])
	assert.Equal(t, []Event{{Kind: Added, Count: 5, Total: 5}}, rec.kind(Added))
}

func TestEvictIncremental(t *testing.T) {
	b := New(Config{MaxPointCount: 3})
	var rec recorder
	b.Subscribe(rec.listen)
	for i := 1; i <= 5; i++ {
		b.Append(Point{X: float64(i), Y: 0})
		assert.LessOrEqual(t, b.PointCount(), 3)
	}
	assert.Equal(t, []float64{3, 4, 5}, xs(b.Points()))
	assert.Len(t, rec.kind(Added), 5)
	assert.Len(t, rec.kind(Removed), 2)
}

func TestEvictByAge(t *testing.T) {
	b := New(Config{MaxAge: 10 * time.Second, Clock: fixedClock(100)})
	b.AppendBatch([]Point{{X: 85, Y: 0}, {X: 89, Y: 0}, {X: 90, Y: 0}, {X: 95, Y: 0}})
	// 85 and 89 are older than 100-10.
	assert.Equal(t, []float64{90, 95}, xs(b.Points()))

	age, ok := b.OldestAge()
	assert.True(t, ok)
	assert.Equal(t, 10*time.Second, age)
}

func TestAgeFromNewest(t *testing.T) {
	b := New(Config{MaxAge: time.Minute, AgeFromNewest: true})
	for i := 0; i < 200; i++ {
		b.Append(Point{X: float64(i), Y: 0})
	}
	assert.Equal(t, 61, b.PointCount())
	assert.Equal(t, 139.0, b.Points()[0].X)
}

func TestOutOfOrder(t *testing.T) {
	b := New(Config{})
	b.AppendBatch([]Point{{X: 1, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}})
	b.Append(Point{X: 3, Y: 1})
	b.AppendBatch([]Point{{X: 7, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}})
	assert.Equal(t, []float64{0, 1, 3, 5, 7, 9, 10}, xs(b.Points()))

	// Equal X keeps insertion order.
	b.Append(Point{X: 5, Y: 2})
	pts := b.Points()
	assert.Equal(t, Point{X: 5, Y: 0}, pts[3])
	assert.Equal(t, Point{X: 5, Y: 2}, pts[4])
}

func TestCompaction(t *testing.T) {
	b := New(Config{MaxPointCount: 10})
	for i := 0; i < 1000; i++ {
		b.Append(Point{X: float64(i), Y: float64(i)})
	}
	assert.Equal(t, 10, b.PointCount())
	assert.LessOrEqual(t, len(b.pts), 20)
	assert.Equal(t, 990.0, b.Points()[0].X)
}

func TestRenderData(t *testing.T) {
	b := New(Config{AutoResampleThreshold: 100})
	for i := 0; i < 50; i++ {
		b.Append(Point{X: float64(i), Y: float64(i % 7)})
	}
	raw := b.RenderData(10)
	assert.Len(t, raw, 50)
	raw[0].Y = 1000
	assert.NotEqual(t, 1000.0, b.Points()[0].Y, "RenderData must copy")

	for i := 50; i < 1000; i++ {
		b.Append(Point{X: float64(i), Y: float64(i % 7)})
	}
	out := b.RenderData(100)
	assert.Len(t, out, 200)
	assert.Equal(t, b.Points()[0], out[0])

	b = New(Config{AutoResampleThreshold: 10, PointsPerPixel: 1, Resampler: resample.Decimate{}})
	for i := 0; i < 100; i++ {
		b.Append(Point{X: float64(i), Y: 0})
	}
	assert.Len(t, b.RenderData(20), 20)

	// A zero-width plot still shows the ends of the data.
	for _, w := range []int{0, -5} {
		out := b.RenderData(w)
		if assert.Len(t, out, 2) {
			assert.Equal(t, Point{X: 0, Y: 0}, out[0])
			assert.Equal(t, Point{X: 99, Y: 0}, out[1])
		}
	}
}

func TestEmpty(t *testing.T) {
	b := New(Config{MaxPointCount: 5, MaxAge: time.Second})
	_, ok := b.OldestAge()
	assert.False(t, ok)
	assert.Equal(t, 0, b.TrimToWindow())
	assert.Empty(t, b.RenderData(100))
	_, _, ok = b.Bounds()
	assert.False(t, ok)
	b.AppendBatch(nil)
	assert.Equal(t, 0, b.PointCount())
}

func TestClearStatsBounds(t *testing.T) {
	b := New(Config{})
	var rec recorder
	b.Subscribe(rec.listen)
	b.AppendBatch([]Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}})

	s := b.Stats()
	assert.Equal(t, uint(3), s.Count)
	assert.Equal(t, 4.0, s.Mean())

	x, y, ok := b.Bounds()
	require.True(t, ok)
	assert.Equal(t, 1.0, x.Min)
	assert.Equal(t, 3.0, x.Max)
	assert.Equal(t, 2.0, y.Min)
	assert.Equal(t, 6.0, y.Max)

	b.Clear()
	assert.Equal(t, 0, b.PointCount())
	assert.Equal(t, Event{Kind: Removed, Count: 3, Total: 0}, rec.events[len(rec.events)-1])
}

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	b := New(Config{MaxPointCount: 2, Logger: logger})
	b.AppendBatch([]Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, 1, hook.LastEntry().Data["evicted"])
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}
