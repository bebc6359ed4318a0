// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ironcore-dev/pcienum/internal/inventory"
	"github.com/ironcore-dev/pcienum/internal/ioport"
	"github.com/ironcore-dev/pcienum/internal/pci"
	"github.com/ironcore-dev/pcienum/internal/report"
)

var _ = Describe("scan", func() {
	scan := func(args ...string) (string, error) {
		return execute(NewCommand(), append([]string{"scan", "--fixture", fixturePath, "--pci-ids", pciIDsPath}, args...)...)
	}

	It("prints the devices of the fixture", func() {
		out, err := scan()
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(out, report.Separator+"\n")).To(Equal(4))
		Expect(out).To(HavePrefix(report.Separator + "\n0:0:0\nVendor ID: 8086, Intel Corporation\nDevice ID: 1237, 440FX - 82441FX PMC [Natoma]\n"))
		Expect(out).To(ContainSubstring("0:1:0\nVendor ID: 8086, Intel Corporation\nDevice ID: 7191, 440BX/ZX/DX - 82443BX/ZX/DX AGP bridge\n"))
		Expect(out).To(ContainSubstring("Primary bus: 0, Secondary bus: 1, Subordinate bus: 1\nI/O base: D0, I/O limit: E0\n"))
		Expect(out).To(ContainSubstring("1:0:0\nVendor ID: 10EC, Realtek Semiconductor Co., Ltd.\n"))
		Expect(out).To(ContainSubstring("Interrupt pin: INTA\nInterrupt line: IRQ 11\n"))
	})

	It("prints JSON", func() {
		out, err := scan("--output", "json")
		Expect(err).NotTo(HaveOccurred())

		var doc report.Document
		Expect(json.Unmarshal([]byte(out), &doc)).To(Succeed())
		var addrs []string
		for _, r := range doc.Devices {
			addrs = append(addrs, r.Address)
		}
		Expect(addrs).To(Equal([]string{"00:00.0", "00:01.0", "01:00.0"}))
		Expect(doc.Devices[1].Bridge).To(BeTrue())
		Expect(doc.Devices[1].Bus).To(Equal(&report.BusRecord{Primary: 0, Secondary: 1, Subordinate: 1}))
		Expect(doc.Devices[2].Interrupt).To(Equal(&report.InterruptRecord{Pin: "INTA", Line: "IRQ 11"}))
		Expect(doc.Devices[2].Class.Class).To(Equal("Network controller"))
	})

	It("reads only the selected registers", func() {
		out, err := scan("--output", "yaml", "--registers", "interrupt")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("interrupt:"))
		Expect(out).NotTo(ContainSubstring("class:"))
		Expect(out).NotTo(ContainSubstring("bus:"))
	})

	It("classifies lines against --max-irq", func() {
		out, err := scan("--registers", "interrupt", "--max-irq", "8")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Interrupt line: invalid (0x0b)\n"))
	})

	It("writes to --file and the metrics textfile", func() {
		dir := GinkgoT().TempDir()
		file := filepath.Join(dir, "devices.txt")
		textfile := filepath.Join(dir, "pcienum.prom")

		out, err := scan("--file", file, "--metrics-textfile", textfile, "--progress")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(BeEmpty())

		devices, err := os.ReadFile(file)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(devices)).To(HavePrefix(report.Separator + "\n0:0:0\n"))

		prom, err := os.ReadFile(textfile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(prom)).To(ContainSubstring("pcienum_bridges 1\n"))
		Expect(string(prom)).To(ContainSubstring(`pcienum_devices{class="02",class_name="Network controller"} 1`))
	})

	It("writes nothing when the I/O ports are not accessible", func() {
		o := &scanOptions{sweepOptions: sweepOptions{openNative: func() (ioport.Backend, error) {
			return nil, fmt.Errorf("%w: operation not permitted", ioport.ErrNoPrivilege)
		}}}
		file := filepath.Join(GinkgoT().TempDir(), "devices.txt")

		out, err := execute(newScanCommand(o), "--pci-ids", pciIDsPath)
		Expect(err).To(MatchError(ioport.ErrNoPrivilege))
		Expect(ExitCode(err)).To(Equal(2))
		Expect(out).To(BeEmpty())

		_, err = execute(newScanCommand(o), "--pci-ids", pciIDsPath, "--file", file)
		Expect(err).To(MatchError(ioport.ErrNoPrivilege))
		Expect(file).NotTo(BeAnExistingFile())
	})

	It("fails when the output file cannot be closed", func() {
		sink := &bytes.Buffer{}
		o := &scanOptions{openSink: func(string) (io.Writer, func() error, error) {
			return sink, func() error { return errors.New("no space left on device") }, nil
		}}
		_, err := execute(newScanCommand(o), "--fixture", fixturePath, "--pci-ids", pciIDsPath, "--file", "devices.txt")
		Expect(err).To(MatchError(`failed to close output file "devices.txt": no space left on device`))
		Expect(ExitCode(err)).To(Equal(1))
		Expect(sink.String()).To(HavePrefix(report.Separator + "\n0:0:0\n"))
	})

	DescribeTable("rejects invalid options",
		func(args []string, msg string) {
			_, err := scan(args...)
			Expect(err).To(MatchError(ContainSubstring(msg)))
			Expect(ExitCode(err)).To(Equal(1))
		},
		Entry("output format", []string{"--output", "xml"}, "unsupported output format"),
		Entry("register name", []string{"--registers", "bars"}, `unknown register "bars"`),
		Entry("zero interrupt lines", []string{"--max-irq", "0"}, "--max-irq must be greater than zero"),
		Entry("missing fixture", []string{"--fixture", "testdata/missing.yaml"}, "missing.yaml"),
		Entry("missing pci.ids", []string{"--pci-ids", "testdata/missing.ids"}, "failed to load PCI ID database"),
		Entry("unwritable file", []string{"--file", "testdata/missing/out.txt"}, "failed to open output file"),
	)
})

var _ = Describe("crosscheck", func() {
	kernelOf := func(devices ...inventory.KernelDevice) func() (inventory.Kernel, error) {
		return func() (inventory.Kernel, error) {
			return inventory.Kernel{Devices: devices}, nil
		}
	}
	fixtureKernel := []inventory.KernelDevice{
		{Address: pci.Address{}, Identity: pci.Identity{VendorID: 0x8086, DeviceID: 0x1237}},
		{Address: pci.Address{Device: 1}, Identity: pci.Identity{VendorID: 0x8086, DeviceID: 0x7191}},
		{Address: pci.Address{Bus: 1}, Identity: pci.Identity{VendorID: 0x10EC, DeviceID: 0x8168}},
	}

	It("reports agreement", func() {
		out, err := execute(newCrosscheckCommand(kernelOf(fixtureKernel...)), "--fixture", fixturePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("consistent\n"))
	})

	It("reports differences", func() {
		kernel := []inventory.KernelDevice{
			fixtureKernel[0],
			{Address: pci.Address{Device: 1}, Identity: pci.Identity{VendorID: 0x8086, DeviceID: 0x7190}},
			{Address: pci.Address{Bus: 2}, Identity: pci.Identity{VendorID: 0x1B21, DeviceID: 0x1142}},
		}
		out, err := execute(newCrosscheckCommand(kernelOf(kernel...)), "--fixture", fixturePath)
		Expect(err).To(MatchError(ErrInconsistent))
		Expect(out).To(Equal("01:00.0: found through I/O ports only\n" +
			"02:00.0: found by the kernel only\n" +
			"00:01.0: identity 8086:7191 through I/O ports, 8086:7190 by the kernel\n"))
	})

	It("fails when the kernel view is unavailable", func() {
		_, err := execute(newCrosscheckCommand(func() (inventory.Kernel, error) {
			return inventory.Kernel{}, errors.New("no sysfs")
		}), "--fixture", fixturePath)
		Expect(err).To(MatchError("no sysfs"))
	})
})

var _ = Describe("address", func() {
	DescribeTable("prints the configuration address",
		func(args []string, expected string) {
			out, err := execute(NewCommand(), append([]string{"address"}, args...)...)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(expected + "\n"))
		},
		Entry("origin", []string{"0", "0", "0", "0"}, "0x80000000"),
		Entry("bus 2 device 5 function 1", []string{"2", "5", "1", "0"}, "0x80022900"),
		Entry("hex arguments", []string{"0xFF", "0x1F", "7", "0x3F"}, "0x80FFFFFC"),
		Entry("interrupt register", []string{"0", "0x1F", "3", "15"}, "0x8000FB3C"),
	)

	DescribeTable("rejects out of range fields",
		func(args []string, msg string) {
			_, err := execute(NewCommand(), append([]string{"address"}, args...)...)
			Expect(err).To(MatchError(ContainSubstring(msg)))
		},
		Entry("bus", []string{"256", "0", "0", "0"}, "bus 256 out of range"),
		Entry("device", []string{"0", "32", "0", "0"}, "device 32 out of range"),
		Entry("function", []string{"0", "0", "8", "0"}, "function 8 out of range"),
		Entry("register", []string{"0", "0", "0", "64"}, "register 64 out of range"),
		Entry("not a number", []string{"zero", "0", "0", "0"}, `invalid bus "zero"`),
	)
})

var _ = Describe("decode", func() {
	DescribeTable("decodes register values",
		func(args []string, expected string) {
			out, err := execute(NewCommand(), append([]string{"decode"}, args...)...)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(expected + "\n"))
		},
		Entry("identity", []string{"identity", "0x153410EC"}, "vendor 10ec device 1534"),
		Entry("empty slot", []string{"identity", "0xFFFFFFFF"}, "no device"),
		Entry("class", []string{"class", "0x01060100"}, "class 01 subclass 06 interface 01 revision 00"),
		Entry("header", []string{"header", "0x00810000"}, "header type 0x81 layout 1 bridge true multi-function true"),
		Entry("bus numbers", []string{"bus", "0x00020100"}, "primary 0 secondary 1 subordinate 2"),
		Entry("interrupt", []string{"interrupt", "0x0000010B"}, "pin INTA line IRQ 11"),
		Entry("interrupt above max-irq", []string{"interrupt", "--max-irq", "8", "0x0000010B"}, "pin INTA line invalid (0x0b)"),
		Entry("unused interrupt", []string{"interrupt", "0x000000FF"}, "pin not used line unused"),
		Entry("io window", []string{"io", "0xE0D0"}, "base d0 limit e0"),
	)

	It("rejects unknown kinds and values", func() {
		_, err := execute(NewCommand(), "decode", "bar", "0")
		Expect(err).To(MatchError(ContainSubstring(`unknown register kind "bar"`)))
		_, err = execute(NewCommand(), "decode", "class", "0x100000000")
		Expect(err).To(MatchError(ContainSubstring("invalid register value")))
	})
})

var _ = Describe("ExitCode", func() {
	It("distinguishes missing privilege", func() {
		Expect(ExitCode(fmt.Errorf("failed to access I/O ports: %w", ioport.ErrNoPrivilege))).To(Equal(2))
		Expect(ExitCode(ioport.ErrUnsupported)).To(Equal(1))
		Expect(ExitCode(ErrInconsistent)).To(Equal(1))
	})
})
