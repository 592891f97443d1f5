// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "math"

// LTTB implements Largest-Triangle-Three-Buckets downsampling.
//
// The first and last points are always kept. The interior points are
// split into target-2 equal buckets, and from each bucket LTTB keeps
// the point forming the largest triangle with the previously kept
// point and the centroid of the next bucket.
type LTTB struct{}

func (LTTB) Info() Info {
	return Info{
		Name:           "lttb",
		PreservesShape: true,
		OptimalRange:   SizeRange{Min: 1000, Max: 10000000},
	}
}

// Resample returns target points selected from points, which should
// be sorted by X. If target is 1, it returns the middle point.
func (LTTB) Resample(points []Point, target int) []Point {
	if out, ok := trivial(points, target); ok {
		return out
	}
	n := len(points)
	every := float64(n-2) / float64(target-2)
	out := make([]Point, 0, target)
	out = append(out, points[0])

	a := 0
	for i := 0; i < target-2; i++ {
		// Centroid of the next bucket. For the last bucket this
		// is the final point.
		avgStart := int(float64(i+1)*every) + 1
		avgEnd := int(float64(i+2)*every) + 1
		if avgEnd > n {
			avgEnd = n
		}
		var avgX, avgY float64
		for _, p := range points[avgStart:avgEnd] {
			avgX += p.X
			avgY += p.Y
		}
		if cnt := avgEnd - avgStart; cnt > 0 {
			avgX /= float64(cnt)
			avgY /= float64(cnt)
		}

		start := int(float64(i)*every) + 1
		end := int(float64(i+1)*every) + 1
		pa := points[a]
		// Start with the first point of the bucket so NaN areas
		// still select something.
		next, maxArea := start, -1.0
		for j := start; j < end; j++ {
			p := points[j]
			// Twice the triangle area; the factor doesn't
			// matter for comparison.
			area := math.Abs((pa.X-avgX)*(p.Y-pa.Y) - (pa.X-p.X)*(avgY-pa.Y))
			if area > maxArea {
				next, maxArea = j, area
			}
		}
		out = append(out, points[next])
		a = next
	}
	return append(out, points[n-1])
}
