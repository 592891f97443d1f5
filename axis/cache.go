// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"encoding/binary"
	"fmt"

	"github.com/aclements/go-chartcore/scale"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 256

// Cache memoizes tick computations across axes. It is safe for
// concurrent use.
type Cache struct {
	c *lru.Cache
}

type cacheKey struct {
	kind string
	r    scale.Range
	step float64
}

type cacheEntry struct {
	majors, minors []float64
}

// NewCache returns a cache holding up to size tick sets. If size is 0,
// a default size is used.
func NewCache(size int) (*Cache, error) {
	if size == 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{c}, nil
}

// Ticks returns a's ticks at approxStep, computing them on a miss.
// The returned slices are shared and must not be modified.
func (c *Cache) Ticks(a *Axis, approxStep float64) (majors, minors []float64) {
	key := cacheKey{a.key, a.visible, approxStep}
	if v, ok := c.c.Get(key); ok {
		e := v.(cacheEntry)
		return e.majors, e.minors
	}
	majors = a.ticker.Ticks(a.visible, approxStep)
	minors = a.ticker.MinorTicks(a.visible, majors)
	c.c.Add(key, cacheEntry{majors, minors})
	return majors, minors
}

// Len returns the number of cached tick sets.
func (c *Cache) Len() int {
	return c.c.Len()
}

// kindKey returns the cache identity of k. Category names are hashed
// with their lengths so that names containing separators cannot
// collide.
func kindKey(k Kind) string {
	c, ok := k.(Category)
	if !ok {
		return k.String()
	}
	d := xxhash.New()
	var n [8]byte
	for _, name := range c.Names {
		binary.LittleEndian.PutUint64(n[:], uint64(len(name)))
		d.Write(n[:])
		d.WriteString(name)
	}
	return fmt.Sprintf("category/%g/%d/%016x", c.Spacing, len(c.Names), d.Sum64())
}
