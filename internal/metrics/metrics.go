// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics exposes the result of a configuration space sweep as
// Prometheus metrics.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ironcore-dev/pcienum/internal/pciids"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// classUnread labels devices whose class register was not read.
const classUnread = "unread"

type classKey struct {
	code string
	name string
}

// SweepCollector collects the devices of one sweep.
type SweepCollector struct {
	db pciids.Database

	mux       sync.RWMutex
	classes   map[classKey]uint64
	bridges   uint64
	multi     uint64
	duration  time.Duration
	finished  time.Time
	completed bool

	devicesDesc  *prometheus.Desc
	bridgesDesc  *prometheus.Desc
	multiDesc    *prometheus.Desc
	durationDesc *prometheus.Desc
	lastDesc     *prometheus.Desc
}

// NewSweepCollector returns a collector naming classes through db.
func NewSweepCollector(db pciids.Database) *SweepCollector {
	return &SweepCollector{
		db:      db,
		classes: make(map[classKey]uint64),
		devicesDesc: prometheus.NewDesc(
			"pcienum_devices",
			"Number of PCI functions found by the last sweep per base class",
			[]string{"class", "class_name"},
			nil,
		),
		bridgesDesc: prometheus.NewDesc(
			"pcienum_bridges",
			"Number of PCI-to-PCI bridges found by the last sweep",
			nil, nil,
		),
		multiDesc: prometheus.NewDesc(
			"pcienum_multifunction_devices",
			"Number of functions flagged multi-function by the last sweep",
			nil, nil,
		),
		durationDesc: prometheus.NewDesc(
			"pcienum_sweep_duration_seconds",
			"Duration of the last sweep",
			nil, nil,
		),
		lastDesc: prometheus.NewDesc(
			"pcienum_last_sweep_timestamp_seconds",
			"Unix time the last sweep finished",
			nil, nil,
		),
	}
}

// Observe records one device found by the sweep.
func (c *SweepCollector) Observe(d scan.Device) {
	c.mux.Lock()
	defer c.mux.Unlock()

	key := classKey{code: classUnread, name: classUnread}
	if d.Class != nil {
		key = classKey{
			code: fmt.Sprintf("%02x", d.Class.Base),
			name: pciids.ClassName(c.db, d.Class.Base),
		}
	}
	c.classes[key]++
	if d.IsBridge() {
		c.bridges++
	}
	if d.Header != nil && d.Header.IsMultiFunction() {
		c.multi++
	}
}

// Finish marks the sweep as complete at now after taking duration.
func (c *SweepCollector) Finish(now time.Time, duration time.Duration) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.finished = now
	c.duration = duration
	c.completed = true
}

// Describe implements prometheus.Collector.
func (c *SweepCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.devicesDesc
	ch <- c.bridgesDesc
	ch <- c.multiDesc
	ch <- c.durationDesc
	ch <- c.lastDesc
}

// Collect implements prometheus.Collector. Timing metrics are only exported
// once Finish was called.
func (c *SweepCollector) Collect(ch chan<- prometheus.Metric) {
	c.mux.RLock()
	defer c.mux.RUnlock()

	for key, count := range c.classes {
		ch <- prometheus.MustNewConstMetric(c.devicesDesc, prometheus.GaugeValue, float64(count), key.code, key.name)
	}
	ch <- prometheus.MustNewConstMetric(c.bridgesDesc, prometheus.GaugeValue, float64(c.bridges))
	ch <- prometheus.MustNewConstMetric(c.multiDesc, prometheus.GaugeValue, float64(c.multi))
	if c.completed {
		ch <- prometheus.MustNewConstMetric(c.durationDesc, prometheus.GaugeValue, c.duration.Seconds())
		ch <- prometheus.MustNewConstMetric(c.lastDesc, prometheus.GaugeValue, float64(c.finished.Unix()))
	}
}

// WriteTextfile writes the collected metrics to path in the text exposition
// format read by the node exporter's textfile collector.
func WriteTextfile(path string, c *SweepCollector) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		return fmt.Errorf("failed to register sweep collector: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", path, err)
	}
	return nil
}

var _ prometheus.Collector = (*SweepCollector)(nil)
