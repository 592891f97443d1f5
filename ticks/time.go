// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-chartcore/internal/approx"
	"github.com/aclements/go-chartcore/scale"
)

// A TimeUnit is a calendar unit used to step date/time ticks.
type TimeUnit int

const (
	Second TimeUnit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = [...]string{"second", "minute", "hour", "day", "week", "month", "year"}

func (u TimeUnit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
	return unitNames[u]
}

// nominal returns the average length of one u in seconds.
func (u TimeUnit) nominal() float64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	case Week:
		return 7 * 86400
	case Month:
		return 365.2425 * 86400 / 12
	case Year:
		return 365.2425 * 86400
	}
	panic("bad TimeUnit " + u.String())
}

// A TimeLevel is one granularity of date/time ticks: majors every Step
// Units, minors every MinorStep MinorUnits.
type TimeLevel struct {
	Unit      TimeUnit
	Step      int
	MinorUnit TimeUnit
	MinorStep int

	// Format is the strftime layout used to label ticks at this
	// level.
	Format string
}

// Nominal returns the average distance between ticks at level l in
// seconds.
func (l TimeLevel) Nominal() float64 {
	return float64(l.Step) * l.Unit.nominal()
}

func (l TimeLevel) String() string {
	return fmt.Sprintf("%d %s", l.Step, l.Unit)
}

var timeLevels = []TimeLevel{
	{Minute, 1, Second, 15, "%H:%M"},
	{Minute, 5, Minute, 1, "%H:%M"},
	{Minute, 15, Minute, 5, "%H:%M"},
	{Minute, 30, Minute, 10, "%H:%M"},
	{Hour, 1, Minute, 15, "%H:%M"},
	{Hour, 3, Hour, 1, "%H:%M"},
	{Hour, 6, Hour, 1, "%H:%M"},
	{Hour, 12, Hour, 3, "%b %d %H:%M"},
	{Day, 1, Hour, 6, "%b %d"},
	{Day, 2, Hour, 12, "%b %d"},
	{Week, 1, Day, 1, "%b %d"},
	{Month, 1, Day, 7, "%b %Y"},
	{Month, 3, Month, 1, "%b %Y"},
	{Month, 6, Month, 1, "%b %Y"},
	{Year, 1, Month, 3, "%Y"},
}

// yearLevel returns the level for ticks every stride years.
func yearLevel(stride int) TimeLevel {
	if stride <= 1 {
		return timeLevels[len(timeLevels)-1]
	}
	minor := 1
	if stride >= 10 {
		minor = stride / subdivisions(float64(stride))
	}
	return TimeLevel{Year, stride, Year, minor, "%Y"}
}

// level returns the well-known level with the given unit and step.
func level(u TimeUnit, step int) TimeLevel {
	if u == Year {
		return yearLevel(step)
	}
	for _, l := range timeLevels {
		if l.Unit == u && l.Step == step {
			return l
		}
	}
	panic(fmt.Sprintf("no time level %d %s", step, u))
}

// Unix seconds representable as a time.Time with a four digit year.
const (
	minUnix = -62135596800 // 0001-01-01
	maxUnix = 253402300799 // 9999-12-31
)

// Time places ticks at calendar boundaries. Tick positions are Unix
// seconds.
type Time struct {
	// Location is the time zone ticks are aligned in. If nil, UTC
	// is used.
	Location *time.Location
}

var _ Ticker = Time{}

func (t Time) loc() *time.Location {
	if t.Location == nil {
		return time.UTC
	}
	return t.Location
}

// ToTime converts Unix seconds to a time in loc.
func ToTime(x float64, loc *time.Location) time.Time {
	sec := math.Floor(x)
	nsec := math.Round((x - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).In(loc)
}

// FromTime converts t to Unix seconds.
func FromTime(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func timeRangeOK(r scale.Range) bool {
	return r.Valid() && r.Min >= minUnix && r.Max <= maxUnix
}

// Level returns the tick level Ticks uses for r and approxStep.
//
// Without a hint, the level is chosen from the span of r. With
// approxStep > 0 (in seconds), it is the finest level whose nominal
// step is at least approxStep. In both cases the level is coarsened
// until the range holds at most MaxTimeTicks ticks.
func (t Time) Level(r scale.Range, approxStep float64) TimeLevel {
	span := r.Size()
	var l TimeLevel
	if approxStep > 0 && approx.Finite(approxStep) {
		l = levelAtLeast(approxStep)
	} else {
		const (
			minute = 60
			hour   = 60 * minute
			day    = 24 * hour
		)
		switch {
		case span <= 10*minute:
			l = level(Minute, 1)
		case span <= hour:
			l = level(Minute, 5)
		case span <= 6*hour:
			l = level(Minute, 30)
		case span <= 2*day:
			l = level(Hour, 1)
		case span <= 40*day:
			l = level(Day, 1)
		case span <= 800*day:
			l = level(Month, 1)
		default:
			years := span / Year.nominal()
			l = yearLevel(int(ladderAtLeast(years / 20)))
		}
	}
	if span/l.Nominal() > MaxTimeTicks {
		l = levelAtLeast(span / MaxTimeTicks)
	}
	return l
}

// levelAtLeast returns the finest level whose nominal step is >= step
// seconds.
func levelAtLeast(step float64) TimeLevel {
	for _, l := range timeLevels {
		if l.Nominal() >= step*(1-tolFrac) {
			return l
		}
	}
	return yearLevel(int(ladderAtLeast(step / Year.nominal())))
}

// LevelOf infers the level of a set of majors from the spacing
// between the first two. It returns false if there are fewer than two
// majors.
func (t Time) LevelOf(majors []float64) (TimeLevel, bool) {
	if len(majors) < 2 {
		return TimeLevel{}, false
	}
	spacing := majors[1] - majors[0]
	if !(spacing > 0) {
		return TimeLevel{}, false
	}
	if spacing > 1.5*Year.nominal() {
		return yearLevel(int(math.Round(spacing / Year.nominal()))), true
	}
	best, bestDist := timeLevels[0], math.Inf(1)
	for _, l := range timeLevels {
		if d := math.Abs(math.Log(spacing / l.Nominal())); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best, true
}

// floor returns the start of the step containing tm.
func floorTime(tm time.Time, u TimeUnit, step int) time.Time {
	y, mo, d := tm.Date()
	h, mi, s := tm.Clock()
	loc := tm.Location()
	switch u {
	case Second:
		return time.Date(y, mo, d, h, mi, s-s%step, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi-mi%step, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h-h%step, 0, 0, 0, loc)
	case Day:
		start := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		if step > 1 {
			// Align multi-day steps to civil days since the
			// epoch so they are stable under panning.
			days := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
			off := int(days % int64(step))
			if off < 0 {
				off += step
			}
			start = start.AddDate(0, 0, -off)
		}
		return start
	case Week:
		wd := (int(tm.Weekday()) + 6) % 7 // Monday is 0
		return time.Date(y, mo, d-wd, 0, 0, 0, 0, loc)
	case Month:
		m := int(mo) - 1
		return time.Date(y, time.Month(m-m%step+1), 1, 0, 0, 0, 0, loc)
	case Year:
		off := y % step
		if off < 0 {
			off += step
		}
		return time.Date(y-off, 1, 1, 0, 0, 0, 0, loc)
	}
	panic("bad TimeUnit " + u.String())
}

// addTime returns tm advanced by n steps of step units.
func addTime(tm time.Time, u TimeUnit, step, n int) time.Time {
	k := n * step
	switch u {
	case Second:
		return tm.Add(time.Duration(k) * time.Second)
	case Minute:
		return tm.Add(time.Duration(k) * time.Minute)
	case Hour:
		return tm.Add(time.Duration(k) * time.Hour)
	case Day:
		return tm.AddDate(0, 0, k)
	case Week:
		return tm.AddDate(0, 0, 7*k)
	case Month:
		return tm.AddDate(0, k, 0)
	case Year:
		return tm.AddDate(k, 0, 0)
	}
	panic("bad TimeUnit " + u.String())
}

// timeEps is the tolerance in seconds for comparing tick positions.
const timeEps = 1e-6

// Ticks returns calendar-aligned ticks in r, where r is in Unix
// seconds.
func (t Time) Ticks(r scale.Range, approxStep float64) []float64 {
	if !timeRangeOK(r) {
		return nil
	}
	l := t.Level(r, approxStep)
	anchor := floorTime(ToTime(r.Min, t.loc()), l.Unit, l.Step)
	var ticks []float64
	// The anchor is at most one step before r.Min.
	for i := 0; len(ticks) < MaxTimeTicks && i <= MaxTimeTicks+1; i++ {
		x := FromTime(addTime(anchor, l.Unit, l.Step, i))
		if x > r.Max+timeEps {
			break
		}
		if x >= r.Min-timeEps && (len(ticks) == 0 || x > ticks[len(ticks)-1]) {
			ticks = append(ticks, x)
		}
	}
	return ticks
}

// MinorTicks steps by the minor unit of the level inferred from the
// majors' spacing, restarting at each major so minors stay aligned to
// calendar boundaries within each major interval.
func (t Time) MinorTicks(r scale.Range, majors []float64) []float64 {
	if !timeRangeOK(r) {
		return nil
	}
	l, ok := t.LevelOf(majors)
	if !ok {
		return nil
	}
	loc := t.loc()
	var ticks []float64
	add := func(x float64) bool {
		if len(ticks) >= MaxMinorTicks {
			return false
		}
		if x >= r.Min-timeEps && x <= r.Max+timeEps && (len(ticks) == 0 || x > ticks[len(ticks)-1]) {
			ticks = append(ticks, x)
		}
		return true
	}

	// Before the first major.
	first := ToTime(majors[0], loc)
	var pre []float64
	for i := 1; len(pre) < MaxMinorTicks; i++ {
		x := FromTime(addTime(first, l.MinorUnit, l.MinorStep, -i))
		if x < r.Min-timeEps {
			break
		}
		pre = append(pre, x)
	}
	for i := len(pre) - 1; i >= 0; i-- {
		add(pre[i])
	}

	// Within and after each major interval.
	for j, m := range majors {
		end := r.Max + timeEps
		if j+1 < len(majors) {
			end = majors[j+1] - timeEps
		}
		start := ToTime(m, loc)
		for i := 1; ; i++ {
			x := FromTime(addTime(start, l.MinorUnit, l.MinorStep, i))
			if x > end || !add(x) {
				break
			}
		}
	}
	return ticks
}
