// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// MinMax keeps the minimum and maximum Y of each bucket, in their
// original order, plus the first and last points.
type MinMax struct{}

func (MinMax) Info() Info {
	return Info{
		Name:           "minmax",
		PreservesShape: true,
		OptimalRange:   SizeRange{Min: 10000, Max: 100000000},
	}
}

func (MinMax) Resample(points []Point, target int) []Point {
	if out, ok := trivial(points, target); ok {
		return out
	}
	n := len(points)
	buckets, pairs := (target-2)/2, true
	if buckets == 0 {
		buckets, pairs = 1, false
	}
	every := float64(n-2) / float64(buckets)
	out := make([]Point, 0, target)
	out = append(out, points[0])
	for b := 0; b < buckets; b++ {
		start := int(float64(b)*every) + 1
		end := int(float64(b+1)*every) + 1
		if b == buckets-1 {
			end = n - 1
		}
		if start >= end {
			continue
		}
		lo, hi := start, start
		for j := start + 1; j < end; j++ {
			if points[j].Y < points[lo].Y {
				lo = j
			}
			if points[j].Y > points[hi].Y {
				hi = j
			}
		}
		switch {
		case !pairs:
			out = append(out, points[hi])
		case lo == hi:
			out = append(out, points[lo])
		case lo < hi:
			out = append(out, points[lo], points[hi])
		default:
			out = append(out, points[hi], points[lo])
		}
	}
	return append(out, points[n-1])
}
