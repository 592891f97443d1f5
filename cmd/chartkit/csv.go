// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aclements/go-chartcore/resample"
	"github.com/aclements/go-chartcore/ticks"
)

// openInput opens path for reading, or stdin if path is "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// parseX parses a number or an RFC 3339 time in Unix seconds.
func parseX(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a number nor an RFC 3339 time", s)
	}
	return ticks.FromTime(t), nil
}

// readPoints reads x,y rows from r. A first row that does not parse is
// taken as a header.
func readPoints(r io.Reader) ([]resample.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var pts []resample.Point
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", line, len(rec))
		}
		x, errx := parseX(rec[0])
		y, erry := strconv.ParseFloat(rec[1], 64)
		if errx != nil || erry != nil {
			if line == 1 {
				continue
			}
			if errx == nil {
				errx = erry
			}
			return nil, fmt.Errorf("line %d: %w", line, errx)
		}
		pts = append(pts, resample.Point{X: x, Y: y})
	}
	return pts, nil
}

// writePoints writes pts to w as CSV.
func writePoints(w io.Writer, pts []resample.Point) error {
	cw := csv.NewWriter(w)
	for _, p := range pts {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
