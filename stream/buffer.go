// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream implements a bounded, time-windowed buffer of
// samples for live charts.
//
// A Buffer keeps its points sorted by X, where X is a time in Unix
// seconds. After every append, points older than the configured age
// or beyond the configured count are evicted from the front. A Buffer
// is not safe for concurrent use.
package stream

import (
	"fmt"
	"sort"
	"time"

	"github.com/aclements/go-chartcore/resample"
	"github.com/aclements/go-chartcore/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/sirupsen/logrus"
)

// Point is a sample. X is in Unix seconds.
type Point = resample.Point

// Config configures a Buffer. The zero Config is an unbounded buffer
// that never resamples.
type Config struct {
	// MaxPointCount bounds the number of retained points. 0 means
	// unbounded.
	MaxPointCount int

	// MaxAge evicts points whose X is older than MaxAge. 0 means
	// points never expire.
	MaxAge time.Duration

	// AutoResampleThreshold is the point count above which
	// RenderData resamples. 0 disables resampling.
	AutoResampleThreshold int

	// PointsPerPixel is the resampling density. If 0, 2 is used.
	PointsPerPixel float64

	// Resampler is used by RenderData. If nil, resample.LTTB is
	// used.
	Resampler resample.Resampler

	// Clock returns the current time. If nil, time.Now is used.
	Clock func() time.Time

	// AgeFromNewest measures age relative to the newest point
	// rather than Clock. This is useful when replaying historical
	// data.
	AgeFromNewest bool

	// Logger receives debug traces of evictions. If nil, the
	// Buffer is silent.
	Logger logrus.FieldLogger
}

// EventKind distinguishes buffer notifications.
type EventKind int

const (
	Added EventKind = iota
	Removed
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// An Event reports Count points added to or removed from a buffer,
// leaving Total points.
type Event struct {
	Kind         EventKind
	Count, Total int
}

// A Listener is notified synchronously of buffer changes.
type Listener func(Event)

// Buffer is a sorted, bounded series of points.
type Buffer struct {
	cfg       Config
	pts       []Point // Live points are pts[head:]
	head      int
	listeners []Listener
}

// New returns an empty Buffer configured by cfg.
func New(cfg Config) *Buffer {
	if cfg.PointsPerPixel <= 0 {
		cfg.PointsPerPixel = 2
	}
	if cfg.Resampler == nil {
		cfg.Resampler = resample.LTTB{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Buffer{cfg: cfg}
}

// Subscribe registers l to be called after every change.
func (b *Buffer) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Buffer) emit(kind EventKind, count int) {
	ev := Event{Kind: kind, Count: count, Total: b.PointCount()}
	for _, l := range b.listeners {
		l(ev)
	}
}

func (b *Buffer) live() []Point {
	return b.pts[b.head:]
}

// PointCount returns the number of retained points.
func (b *Buffer) PointCount() int {
	return len(b.pts) - b.head
}

// Append adds p and then trims the buffer to its window.
func (b *Buffer) Append(p Point) {
	b.AppendBatch([]Point{p})
}

// AppendBatch adds ps, which need not be sorted, and then trims the
// buffer to its window. Listeners see a single Added event for the
// whole batch.
func (b *Buffer) AppendBatch(ps []Point) {
	if len(ps) == 0 {
		return
	}
	b.insert(ps)
	b.emit(Added, len(ps))
	b.TrimToWindow()
}

// insert merges ps into the buffer, keeping it sorted by X. Points
// with equal X keep their insertion order.
func (b *Buffer) insert(ps []Point) {
	if !sort.SliceIsSorted(ps, func(i, j int) bool { return ps[i].X < ps[j].X }) {
		ps = append([]Point(nil), ps...)
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].X < ps[j].X })
	}
	live := b.live()
	if len(live) == 0 || ps[0].X >= live[len(live)-1].X {
		b.pts = append(b.pts, ps...)
		return
	}

	// Only the tail after the first new point moves.
	i := sort.Search(len(live), func(i int) bool { return live[i].X > ps[0].X })
	tail := append([]Point(nil), live[i:]...)
	b.pts = b.pts[:b.head+i]
	for len(tail) > 0 && len(ps) > 0 {
		if ps[0].X < tail[0].X {
			b.pts, ps = append(b.pts, ps[0]), ps[1:]
		} else {
			b.pts, tail = append(b.pts, tail[0]), tail[1:]
		}
	}
	b.pts = append(b.pts, tail...)
	b.pts = append(b.pts, ps...)
}

// now returns the reference time for age eviction in Unix seconds.
func (b *Buffer) now() float64 {
	if b.cfg.AgeFromNewest {
		live := b.live()
		return live[len(live)-1].X
	}
	t := b.cfg.Clock()
	return float64(t.UnixNano()) / 1e9
}

// TrimToWindow evicts points beyond MaxPointCount or older than
// MaxAge and returns the number of points evicted. Listeners see one
// Removed event if any points were evicted.
func (b *Buffer) TrimToWindow() int {
	live := b.live()
	if len(live) == 0 {
		return 0
	}
	drop := 0
	if max := b.cfg.MaxPointCount; max > 0 && len(live) > max {
		drop = len(live) - max
	}
	if b.cfg.MaxAge > 0 {
		cutoff := b.now() - b.cfg.MaxAge.Seconds()
		for drop < len(live) && live[drop].X < cutoff {
			drop++
		}
	}
	if drop == 0 {
		return 0
	}
	b.head += drop
	b.compact()
	if b.cfg.Logger != nil {
		b.cfg.Logger.WithFields(logrus.Fields{
			"evicted": drop,
			"total":   b.PointCount(),
		}).Debug("stream: trimmed to window")
	}
	b.emit(Removed, drop)
	return drop
}

// compact reclaims the space of evicted points once they outnumber
// the live points.
func (b *Buffer) compact() {
	if b.head < len(b.pts)-b.head {
		return
	}
	n := copy(b.pts, b.pts[b.head:])
	b.pts = b.pts[:n]
	b.head = 0
}

// OldestAge returns the age of the oldest point. It returns false if
// the buffer is empty.
func (b *Buffer) OldestAge() (time.Duration, bool) {
	live := b.live()
	if len(live) == 0 {
		return 0, false
	}
	age := b.now() - live[0].X
	return time.Duration(age * float64(time.Second)), true
}

// RenderData returns the points to draw in a plot pixelWidth pixels
// wide. If the buffer holds more than AutoResampleThreshold points,
// they are reduced to pixelWidth*PointsPerPixel points with the
// configured Resampler, but never fewer than the first and last
// point. The result is never aliased with the buffer.
func (b *Buffer) RenderData(pixelWidth int) []Point {
	live := b.live()
	if t := b.cfg.AutoResampleThreshold; t > 0 && len(live) > t {
		target := max(int(float64(pixelWidth)*b.cfg.PointsPerPixel), 2)
		live = b.cfg.Resampler.Resample(live, target)
	}
	return append([]Point{}, live...)
}

// Points returns a copy of the retained points in X order.
func (b *Buffer) Points() []Point {
	return append([]Point{}, b.live()...)
}

// Clear evicts all points.
func (b *Buffer) Clear() {
	n := b.PointCount()
	b.pts, b.head = b.pts[:0], 0
	if n > 0 {
		b.emit(Removed, n)
	}
}

// Stats returns summary statistics of the retained Y values.
func (b *Buffer) Stats() stats.StreamStats {
	var s stats.StreamStats
	for _, p := range b.live() {
		s.Add(p.Y)
	}
	return s
}

// Bounds returns the X and Y extents of the retained points. It
// returns false if there are no finite points.
func (b *Buffer) Bounds() (x, y scale.Range, ok bool) {
	live := b.live()
	xs := make([]float64, len(live))
	ys := make([]float64, len(live))
	for i, p := range live {
		xs[i], ys[i] = p.X, p.Y
	}
	x, okx := scale.RangeOf(xs)
	y, oky := scale.RangeOf(ys)
	return x, y, okx && oky
}
