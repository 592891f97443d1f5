// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-chartcore/ticks"
	"github.com/dustin/go-humanize"
	"github.com/tebeka/strftime"
)

// Labels returns the labels for majors. approxStep is the hint the
// majors were computed with; date axes use it to pick a format when
// there are too few majors to infer one.
func (a *Axis) Labels(majors []float64, approxStep float64) []string {
	if len(majors) == 0 {
		return nil
	}
	switch k := a.kind.(type) {
	case Linear:
		return numberLabels(majors)
	case Log:
		labels := make([]string, len(majors))
		for i, x := range majors {
			labels[i] = sciLabel(x)
		}
		return labels
	case DateTime:
		t := ticks.Time{Location: k.loc()}
		level, ok := t.LevelOf(majors)
		if !ok {
			level = t.Level(a.visible, approxStep)
		}
		labels := make([]string, len(majors))
		for i, x := range majors {
			labels[i] = timeLabel(level.Format, ticks.ToTime(x, k.loc()))
		}
		return labels
	case Category:
		t := a.ticker.(ticks.Category)
		labels := make([]string, len(majors))
		for i, x := range majors {
			labels[i], _ = t.Label(x)
		}
		return labels
	}
	panic("axis: unknown kind")
}

// numberLabels formats evenly spaced numbers with the precision of
// their spacing. Magnitudes outside [1e-3, 1e3) share an SI prefix.
func numberLabels(majors []float64) []string {
	maxAbs := 0.0
	for _, x := range majors {
		maxAbs = math.Max(maxAbs, math.Abs(x))
	}
	step := maxAbs
	if len(majors) >= 2 {
		step = majors[1] - majors[0]
	}

	unit, prefix := 1.0, ""
	switch {
	case maxAbs < 1e-24 || maxAbs >= 1e27:
		// Beyond the SI prefixes.
		labels := make([]string, len(majors))
		for i, x := range majors {
			labels[i] = sciLabel(x)
		}
		return labels
	case maxAbs < 1e-3 || maxAbs >= 1e3:
		var v float64
		v, prefix = humanize.ComputeSI(maxAbs)
		unit = math.Pow(10, math.Round(math.Log10(maxAbs/v)))
	}

	prec := decimals(step / unit)
	labels := make([]string, len(majors))
	for i, x := range majors {
		if x == 0 {
			labels[i] = "0"
			continue
		}
		labels[i] = strconv.FormatFloat(x/unit, 'f', prec, 64) + prefix
	}
	return labels
}

// decimals returns the number of fractional digits needed to print
// multiples of step exactly.
func decimals(step float64) int {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	if d < 0 {
		d = 0
	}
	for ; d < 15; d++ {
		s := step * math.Pow(10, float64(d))
		if math.Abs(s-math.Round(s)) < 1e-6*s {
			break
		}
	}
	return d
}

// sciLabel formats x plainly if its decimal exponent is within ±2 and
// as m×10^k otherwise.
func sciLabel(x float64) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	k := math.Floor(math.Log10(math.Abs(x)) + 1e-9)
	if math.Abs(k) < 3 {
		return strconv.FormatFloat(x, 'g', 6, 64)
	}
	m := strconv.FormatFloat(x/math.Pow(10, k), 'g', 3, 64)
	exp := strconv.Itoa(int(k))
	switch m {
	case "1":
		return "10^" + exp
	case "-1":
		return "-10^" + exp
	}
	return m + "×10^" + exp
}

func timeLabel(format string, t time.Time) string {
	label, err := strftime.Format(format, t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return label
}
