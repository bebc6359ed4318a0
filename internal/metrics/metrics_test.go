// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"k8s.io/utils/ptr"

	"github.com/ironcore-dev/pcienum/internal/metrics"
	"github.com/ironcore-dev/pcienum/internal/pci"
	"github.com/ironcore-dev/pcienum/internal/pciids"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

var _ = Describe("SweepCollector", func() {
	var c *metrics.SweepCollector

	BeforeEach(func() {
		db := pciids.NewTable(nil, nil, []pciids.ClassEntry{
			{Base: 0x02, BaseDesc: "Network controller"},
			{Base: 0x06, BaseDesc: "Bridge"},
		})
		c = metrics.NewSweepCollector(db)
		c.Observe(scan.Device{Class: &pci.ClassCode{Base: 0x06}, Header: ptr.To(pci.HeaderType(0x00))})
		c.Observe(scan.Device{Class: &pci.ClassCode{Base: 0x06, Subclass: 0x04}, Header: ptr.To(pci.HeaderType(0x81))})
		c.Observe(scan.Device{Class: &pci.ClassCode{Base: 0x02}, Header: ptr.To(pci.HeaderType(0x00))})
		c.Observe(scan.Device{Class: &pci.ClassCode{Base: 0xFE}})
		c.Observe(scan.Device{})
	})

	It("counts devices per class and bridges", func() {
		expected := `
# HELP pcienum_bridges Number of PCI-to-PCI bridges found by the last sweep
# TYPE pcienum_bridges gauge
pcienum_bridges 1
# HELP pcienum_devices Number of PCI functions found by the last sweep per base class
# TYPE pcienum_devices gauge
pcienum_devices{class="02",class_name="Network controller"} 1
pcienum_devices{class="06",class_name="Bridge"} 2
pcienum_devices{class="fe",class_name="Unknown class"} 1
pcienum_devices{class="unread",class_name="unread"} 1
# HELP pcienum_multifunction_devices Number of functions flagged multi-function by the last sweep
# TYPE pcienum_multifunction_devices gauge
pcienum_multifunction_devices 1
`
		Expect(testutil.CollectAndCompare(c, strings.NewReader(expected),
			"pcienum_bridges", "pcienum_devices", "pcienum_multifunction_devices")).To(Succeed())
	})

	It("exports timing only after the sweep finished", func() {
		Expect(testutil.CollectAndCount(c, "pcienum_sweep_duration_seconds")).To(BeZero())

		c.Finish(time.Unix(1700000000, 0), 1500*time.Millisecond)
		expected := `
# HELP pcienum_last_sweep_timestamp_seconds Unix time the last sweep finished
# TYPE pcienum_last_sweep_timestamp_seconds gauge
pcienum_last_sweep_timestamp_seconds 1.7e+09
# HELP pcienum_sweep_duration_seconds Duration of the last sweep
# TYPE pcienum_sweep_duration_seconds gauge
pcienum_sweep_duration_seconds 1.5
`
		Expect(testutil.CollectAndCompare(c, strings.NewReader(expected),
			"pcienum_sweep_duration_seconds", "pcienum_last_sweep_timestamp_seconds")).To(Succeed())
	})

	It("writes a textfile", func() {
		c.Finish(time.Now(), time.Second)
		path := filepath.Join(GinkgoT().TempDir(), "pcienum.prom")
		Expect(metrics.WriteTextfile(path, c)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`pcienum_devices{class="06",class_name="Bridge"} 2`))
		Expect(string(data)).To(ContainSubstring("pcienum_sweep_duration_seconds 1"))
	})

	It("passes a pedantic registry", func() {
		reg := prometheus.NewPedanticRegistry()
		Expect(reg.Register(c)).To(Succeed())
		families, err := reg.Gather()
		Expect(err).NotTo(HaveOccurred())

		byName := map[string]*dto.MetricFamily{}
		for _, f := range families {
			byName[f.GetName()] = f
		}
		Expect(byName).To(HaveKey("pcienum_devices"))
		Expect(byName["pcienum_devices"].GetType()).To(Equal(dto.MetricType_GAUGE))
		Expect(byName["pcienum_devices"].GetMetric()).To(HaveLen(4))
		Expect(byName["pcienum_bridges"].GetMetric()[0].GetGauge().GetValue()).To(Equal(1.0))
		Expect(byName).NotTo(HaveKey("pcienum_sweep_duration_seconds"))
	})
})
