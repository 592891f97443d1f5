// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// minSpan returns the synthetic span substituted for a zero-width
// domain at v.
func minSpan(v float64) float64 {
	return math.Max(math.Abs(v), 1) * 1e-9
}
