// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports buffer activity as Prometheus metrics.
type Metrics struct {
	Appended prometheus.Counter
	Evicted  prometheus.Counter
	Size     prometheus.Gauge
}

// NewMetrics creates the metrics for a buffer and registers them with
// reg. name is attached as the "buffer" constant label.
func NewMetrics(reg prometheus.Registerer, name string) (*Metrics, error) {
	labels := prometheus.Labels{"buffer": name}
	m := &Metrics{
		Appended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "chartcore",
			Subsystem:   "stream",
			Name:        "points_appended_total",
			Help:        "Points appended to the buffer.",
			ConstLabels: labels,
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "chartcore",
			Subsystem:   "stream",
			Name:        "points_evicted_total",
			Help:        "Points evicted from the buffer.",
			ConstLabels: labels,
		}),
		Size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "chartcore",
			Subsystem:   "stream",
			Name:        "points",
			Help:        "Points currently retained by the buffer.",
			ConstLabels: labels,
		}),
	}
	for _, c := range []prometheus.Collector{m.Appended, m.Evicted, m.Size} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe updates m from a buffer event. It is a Listener.
func (m *Metrics) Observe(ev Event) {
	switch ev.Kind {
	case Added:
		m.Appended.Add(float64(ev.Count))
	case Removed:
		m.Evicted.Add(float64(ev.Count))
	}
	m.Size.Set(float64(ev.Total))
}
