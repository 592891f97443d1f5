// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A Kind selects the scale, ticker, and label style of an axis. It is
// one of Linear, Log, DateTime, or Category.
type Kind interface {
	fmt.Stringer
	isKind()
}

// Linear is a linear numeric axis.
type Linear struct{}

// Log is a logarithmic axis.
type Log struct {
	// Base is the logarithm base. If 0, base 10 is used.
	Base float64
}

// DateTime is a time axis. Values are Unix seconds.
type DateTime struct {
	// Location is the time zone ticks are aligned and labeled in.
	// If nil, UTC is used.
	Location *time.Location
}

// Category is an axis of discrete named values at multiples of
// Spacing.
type Category struct {
	Names []string

	// Spacing is the distance between categories. If 0, 1 is
	// used.
	Spacing float64
}

func (Linear) isKind()   {}
func (Log) isKind()      {}
func (DateTime) isKind() {}
func (Category) isKind() {}

func (Linear) String() string { return "linear" }

func (k Log) String() string {
	return "log" + strconv.FormatFloat(k.base(), 'g', -1, 64)
}

func (k Log) base() float64 {
	if k.Base == 0 {
		return 10
	}
	return k.Base
}

func (k DateTime) String() string {
	return "time/" + k.loc().String()
}

func (k DateTime) loc() *time.Location {
	if k.Location == nil {
		return time.UTC
	}
	return k.Location
}

func (k Category) String() string {
	return fmt.Sprintf("category/%g[%s]", k.Spacing, strings.Join(k.Names, ","))
}

// ParseKind returns the Kind named by s, which is one of "linear",
// "log", "time", or "category".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear":
		return Linear{}, nil
	case "log":
		return Log{}, nil
	case "time":
		return DateTime{}, nil
	case "category":
		return Category{}, nil
	}
	return nil, fmt.Errorf("unknown axis kind %q", s)
}
