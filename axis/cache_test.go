// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)
	a, err := New(Linear{}, rng(0, 10), WithCache(c))
	require.NoError(t, err)

	m1, _ := a.Ticks(2)
	m2, _ := a.Ticks(2)
	assert.Equal(t, 1, c.Len())
	assert.Same(t, &m1[0], &m2[0])

	a.Ticks(1)
	require.NoError(t, a.SetRange(rng(0, 20)))
	a.Ticks(2)
	assert.Equal(t, 3, c.Len())

	// Different kinds with the same range do not collide.
	b, err := New(Log{}, rng(1, 1000), WithCache(c))
	require.NoError(t, err)
	lm, _ := b.Ticks(0)
	assert.Equal(t, []float64{1, 10, 100, 1000}, lm)

	// Names containing the separator used by String do not collide.
	c1, err := New(Category{Names: []string{"a,b"}}, rng(0, 1), WithCache(c))
	require.NoError(t, err)
	c2, err := New(Category{Names: []string{"a", "b"}}, rng(0, 1), WithCache(c))
	require.NoError(t, err)
	assert.Equal(t, c1.Kind().String(), c2.Kind().String())
	cm1, _ := c1.Ticks(0)
	cm2, _ := c2.Ticks(0)
	assert.Equal(t, []float64{0}, cm1)
	assert.Equal(t, []float64{0, 1}, cm2)

	_, err = NewCache(-1)
	assert.Error(t, err)
}
