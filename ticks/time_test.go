// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"testing"
	"time"

	"github.com/aclements/go-chartcore/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h, min int) float64 {
	return FromTime(time.Date(y, m, d, h, min, 0, 0, time.UTC))
}

func timeRange(a, b float64) scale.Range {
	return scale.Range{Min: a, Max: b}
}

func TestTimeLevel(t *testing.T) {
	start := date(2024, 1, 1, 0, 0)
	for _, test := range []struct {
		span, hint float64
		want       TimeLevel
	}{
		{5 * 60, 0, level(Minute, 1)},
		{3600, 0, level(Minute, 5)},
		{4 * 3600, 0, level(Minute, 30)},
		{86400, 0, level(Hour, 1)},
		{30 * 86400, 0, level(Day, 1)},
		{400 * 86400, 0, level(Month, 1)},
		{90 * Year.nominal(), 0, yearLevel(5)},
		{86400, 600, level(Minute, 15)},
		{86400, 2 * 3600, level(Hour, 3)},
		{30 * 86400, 5 * 86400, level(Week, 1)},
		{1000 * 86400, 60 * 86400, level(Month, 3)},
		{200 * Year.nominal(), 3 * Year.nominal(), yearLevel(5)},
	} {
		got := Time{}.Level(timeRange(start, start+test.span), test.hint)
		assert.Equal(t, test.want, got, "span %v hint %v", test.span, test.hint)
	}
}

func TestTimeLevelCap(t *testing.T) {
	r := timeRange(date(2000, 1, 1, 0, 0), date(2010, 1, 1, 0, 0))
	l := Time{}.Level(r, 1)
	assert.LessOrEqual(t, r.Size()/l.Nominal(), float64(MaxTimeTicks))
	ticks := Time{}.Ticks(r, 1)
	assert.LessOrEqual(t, len(ticks), MaxTimeTicks)
	assert.NotEmpty(t, ticks)
}

func TestTimeTicks(t *testing.T) {
	// Five minute ticks over an hour.
	ticks := Time{}.Ticks(timeRange(date(2024, 1, 1, 0, 0), date(2024, 1, 1, 1, 0)), 0)
	require.Len(t, ticks, 13)
	assert.Equal(t, date(2024, 1, 1, 0, 0), ticks[0])
	assert.Equal(t, date(2024, 1, 1, 0, 5), ticks[1])

	// Daily ticks at midnight.
	ticks = Time{}.Ticks(timeRange(date(2024, 1, 1, 0, 0), date(2024, 1, 8, 0, 0)), 0)
	require.Len(t, ticks, 8)
	for i, x := range ticks {
		assert.Equal(t, date(2024, 1, 1+i, 0, 0), x)
	}

	// Monthly ticks start at the first month boundary.
	ticks = Time{}.Ticks(timeRange(date(2024, 1, 15, 0, 0), date(2024, 12, 15, 0, 0)), 0)
	require.Len(t, ticks, 11)
	assert.Equal(t, date(2024, 2, 1, 0, 0), ticks[0])
	assert.Equal(t, date(2024, 12, 1, 0, 0), ticks[10])

	// Weekly ticks fall on Mondays.
	ticks = Time{}.Ticks(timeRange(date(2024, 1, 3, 0, 0), date(2024, 2, 1, 0, 0)), 7*86400)
	require.Len(t, ticks, 4)
	for _, x := range ticks {
		assert.Equal(t, time.Monday, ToTime(x, time.UTC).Weekday())
	}
	assert.Equal(t, date(2024, 1, 8, 0, 0), ticks[0])

	// Years in multiples of five.
	ticks = Time{}.Ticks(timeRange(date(1970, 1, 1, 0, 0), date(2060, 1, 1, 0, 0)), 0)
	require.Len(t, ticks, 19)
	assert.Equal(t, date(1975, 1, 1, 0, 0), ticks[1])
}

func TestTimeLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	tk := Time{Location: loc}
	ticks := tk.Ticks(timeRange(date(2024, 3, 1, 0, 0), date(2024, 3, 10, 0, 0)), 0)
	require.NotEmpty(t, ticks)
	for _, x := range ticks {
		tm := ToTime(x, loc)
		assert.Equal(t, 0, tm.Hour(), "%v", tm)
		assert.Equal(t, 0, tm.Minute(), "%v", tm)
	}
}

func TestTimeMinor(t *testing.T) {
	r := timeRange(date(2024, 1, 1, 0, 0), date(2024, 1, 8, 0, 0))
	majors := Time{}.Ticks(r, 0)
	minors := Time{}.MinorTicks(r, majors)
	// Every 6 hours between daily majors.
	assert.Len(t, minors, 21)
	assert.Equal(t, date(2024, 1, 1, 6, 0), minors[0])
	assertDisjoint(t, majors, minors, "daily")

	// Weekly minors within February 2024, including the 29th.
	r = timeRange(date(2024, 2, 1, 0, 0), date(2024, 3, 1, 0, 0))
	minors = Time{}.MinorTicks(r, []float64{date(2024, 2, 1, 0, 0), date(2024, 3, 1, 0, 0)})
	assert.Equal(t, []float64{
		date(2024, 2, 8, 0, 0),
		date(2024, 2, 15, 0, 0),
		date(2024, 2, 22, 0, 0),
		date(2024, 2, 29, 0, 0),
	}, minors)

	// Minors before the first major.
	r = timeRange(date(2024, 1, 1, 10, 0), date(2024, 1, 1, 13, 0))
	minors = Time{}.MinorTicks(r, []float64{date(2024, 1, 1, 11, 0), date(2024, 1, 1, 12, 0)})
	assert.Equal(t, date(2024, 1, 1, 10, 0), minors[0])
	assert.Len(t, minors, 11)

	assert.Nil(t, Time{}.MinorTicks(r, []float64{date(2024, 1, 1, 11, 0)}))
}

func TestTimeLevelOf(t *testing.T) {
	l, ok := Time{}.LevelOf([]float64{0, 3600})
	assert.True(t, ok)
	assert.Equal(t, level(Hour, 1), l)

	l, ok = Time{}.LevelOf([]float64{date(2024, 2, 1, 0, 0), date(2024, 3, 1, 0, 0)})
	assert.True(t, ok)
	assert.Equal(t, level(Month, 1), l)

	l, ok = Time{}.LevelOf([]float64{date(1970, 1, 1, 0, 0), date(1980, 1, 1, 0, 0)})
	assert.True(t, ok)
	assert.Equal(t, yearLevel(10), l)
	assert.Equal(t, 2, l.MinorStep)

	_, ok = Time{}.LevelOf(nil)
	assert.False(t, ok)
}

func TestTimeOutOfRange(t *testing.T) {
	assert.Empty(t, Time{}.Ticks(timeRange(0, 1e13), 0))
}
