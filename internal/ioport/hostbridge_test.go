// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ioport_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ironcore-dev/pcienum/internal/ioport"
	"github.com/ironcore-dev/pcienum/internal/pci"
)

var _ = Describe("HostBridge", func() {
	var (
		hb  *ioport.HostBridge
		nic = pci.Address{Bus: 1, Device: 0, Function: 0}
	)

	BeforeEach(func() {
		hb = ioport.NewHostBridge()
		Expect(hb.AddFunction(nic, ioport.DeviceSpec{
			VendorID: 0x10EC,
			DeviceID: 0x8168,
			Revision: 0x15,
			Class:    0x020000,
		}.Image())).To(Succeed())
	})

	read := func(addr pci.Address) uint32 {
		Expect(hb.Out32(pci.ControlPort, pci.ComputeAddress(addr))).To(Succeed())
		value, err := hb.In32(pci.DataPort)
		Expect(err).NotTo(HaveOccurred())
		return value
	}

	It("serves registers of a populated function", func() {
		Expect(read(nic)).To(Equal(uint32(0x816810EC)))
		Expect(read(nic.Slot(pci.ClassRegister))).To(Equal(uint32(0x02000015)))
		Expect(read(nic.Slot(pci.InterruptRegister))).To(Equal(uint32(0x000000FF)))
	})

	It("reads all ones from unpopulated functions", func() {
		Expect(read(pci.Address{Bus: 1, Function: 1})).To(Equal(pci.NoDevice))
	})

	It("reads all ones while the enable bit is clear", func() {
		Expect(hb.Out32(pci.ControlPort, pci.ComputeAddress(nic)&^(1<<31))).To(Succeed())
		Expect(hb.In32(pci.DataPort)).To(Equal(pci.NoDevice))
	})

	It("returns the latched address from the control port", func() {
		Expect(hb.Out32(pci.ControlPort, 0x80010000)).To(Succeed())
		Expect(hb.In32(pci.ControlPort)).To(Equal(uint32(0x80010000)))
	})

	It("stores data port writes of populated functions", func() {
		Expect(hb.Out32(pci.ControlPort, pci.ComputeAddress(nic.Slot(pci.InterruptRegister)))).To(Succeed())
		Expect(hb.Out32(pci.DataPort, 0x0000010B)).To(Succeed())
		Expect(read(nic.Slot(pci.InterruptRegister))).To(Equal(uint32(0x0000010B)))
	})

	It("rejects other ports", func() {
		_, err := hb.In32(0x0CF9)
		Expect(err).To(HaveOccurred())
		Expect(hb.Out32(0x0080, 0)).NotTo(Succeed())
	})

	It("rejects duplicate and oversized functions", func() {
		Expect(hb.AddFunction(nic, nil)).NotTo(Succeed())
		Expect(hb.AddFunction(pci.Address{Bus: 2}, make([]byte, 4096))).NotTo(Succeed())
		Expect(hb.Functions()).To(Equal(1))
	})

	It("works behind an Accessor", func() {
		value, err := pci.NewAccessor(hb).ReadRegister(nic)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint32(0x816810EC)))
	})
})
