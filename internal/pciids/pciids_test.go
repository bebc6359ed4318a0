// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pciids_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ironcore-dev/pcienum/internal/pciids"
)

var _ = Describe("Table", func() {
	var table *pciids.Table

	BeforeEach(func() {
		table = pciids.NewTable(
			[]pciids.VendorEntry{
				{ID: 0x8086, Name: "Intel Corporation"},
				{ID: 0x8086, Name: "Intel (duplicate)"},
			},
			[]pciids.DeviceEntry{
				{VendorID: 0x8086, DeviceID: 0x1237, Name: "440FX"},
			},
			[]pciids.ClassEntry{
				{Base: 0x01, Subclass: 0x00, BaseDesc: "Mass storage controller", SubclassDesc: "SCSI storage controller"},
				{Base: 0x01, Subclass: 0x06, ProgIf: 0x01, BaseDesc: "Mass storage controller", SubclassDesc: "SATA controller", InterfaceDesc: "AHCI 1.0"},
				{Base: 0x06, Subclass: 0x04, ProgIf: 0x01, BaseDesc: "Bridge", SubclassDesc: "PCI bridge", InterfaceDesc: "Subtractive decode"},
			},
		)
	})

	It("looks up vendors and keeps the first duplicate", func() {
		Expect(found(table.Vendor(0x8086))).To(Equal("Intel Corporation"))
		_, ok := table.Vendor(0x10EC)
		Expect(ok).To(BeFalse())
	})

	It("looks up devices by vendor and device ID", func() {
		Expect(found(table.Device(0x8086, 0x1237))).To(Equal("440FX"))
		_, ok := table.Device(0x10EC, 0x1237)
		Expect(ok).To(BeFalse())
	})

	It("looks up base classes", func() {
		Expect(found(table.Class(0x06))).To(Equal("Bridge"))
		_, ok := table.Class(0x02)
		Expect(ok).To(BeFalse())
	})

	It("matches the legacy subclass key against the base class", func() {
		Expect(found(table.Subclass(0x01))).To(Equal("SCSI storage controller"))
		_, ok := table.Subclass(0x06 + 0x10)
		Expect(ok).To(BeFalse())
	})

	It("matches the legacy interface key against any class", func() {
		Expect(found(table.ProgrammingInterface(0x01))).To(Equal("AHCI 1.0"))
		_, ok := table.ProgrammingInterface(0x30)
		Expect(ok).To(BeFalse())
	})

	It("resolves exact subclasses and interfaces", func() {
		Expect(found(table.SubclassOf(0x01, 0x06))).To(Equal("SATA controller"))
		Expect(found(table.InterfaceOf(0x06, 0x04, 0x01))).To(Equal("Subtractive decode"))
		_, ok := table.InterfaceOf(0x01, 0x00, 0x00)
		Expect(ok).To(BeFalse(), "empty descriptions are not entries")
	})

	It("counts its entries", func() {
		vendors, devices := table.Len()
		Expect(vendors).To(Equal(1))
		Expect(devices).To(Equal(1))
	})
})

var _ = Describe("Builtin", func() {
	It("knows common vendors and class codes", func() {
		db := pciids.Builtin()
		Expect(found(db.Vendor(0x10EC))).To(Equal("Realtek Semiconductor Co., Ltd."))
		Expect(found(db.Device(0x8086, 0x1237))).To(Equal("440FX - 82441FX PMC [Natoma]"))
		Expect(found(db.Class(0x01))).To(Equal("Mass storage controller"))
		Expect(found(db.SubclassOf(0x01, 0x06))).To(Equal("SATA controller"))
		Expect(found(db.InterfaceOf(0x0C, 0x03, 0x30))).To(Equal("XHCI"))
	})

	It("returns the same table every time", func() {
		Expect(pciids.Builtin()).To(BeIdenticalTo(pciids.Builtin()))
	})
})

var _ = Describe("Layered", func() {
	It("falls back to later databases", func() {
		primary := pciids.NewTable([]pciids.VendorEntry{{ID: 0x10EC, Name: "Realtek (primary)"}}, nil, nil)
		db := pciids.Layered{primary, pciids.Builtin()}

		Expect(found(db.Vendor(0x10EC))).To(Equal("Realtek (primary)"))
		Expect(found(db.Vendor(0x8086))).To(Equal("Intel Corporation"))
		Expect(found(db.Class(0x02))).To(Equal("Network controller"))
		_, ok := db.Vendor(0xFFFE)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Names", func() {
	db := pciids.NewTable(
		[]pciids.VendorEntry{{ID: 0x10EC, Name: "Realtek"}},
		[]pciids.DeviceEntry{{VendorID: 0x10EC, DeviceID: 0x8168, Name: "RTL8111"}},
		[]pciids.ClassEntry{
			{Base: 0x06, Subclass: 0x00, BaseDesc: "Bridge", SubclassDesc: "Host bridge"},
			{Base: 0x06, Subclass: 0x04, ProgIf: 0x01, BaseDesc: "Bridge", SubclassDesc: "PCI bridge", InterfaceDesc: "Subtractive decode"},
		},
	)

	It("resolves known entries", func() {
		Expect(pciids.VendorName(db, 0x10EC)).To(Equal("Realtek"))
		Expect(pciids.DeviceName(db, 0x10EC, 0x8168)).To(Equal("RTL8111"))
		Expect(pciids.ClassName(db, 0x06)).To(Equal("Bridge"))
		Expect(pciids.SubclassName(db, 0x06, 0x04)).To(Equal("PCI bridge"))
		Expect(pciids.InterfaceName(db, 0x06, 0x04, 0x01)).To(Equal("Subtractive decode"))
	})

	It("resolves legacy keys", func() {
		Expect(pciids.LegacySubclassName(db, 0x06)).To(Equal("Host bridge"))
		Expect(pciids.LegacyInterfaceName(db, 0x01)).To(Equal("Subtractive decode"))
	})

	It("substitutes placeholders", func() {
		Expect(pciids.VendorName(db, 0x8086)).To(Equal("Unknown vendor"))
		Expect(pciids.DeviceName(db, 0x10EC, 0x0001)).To(Equal("Unknown device"))
		Expect(pciids.ClassName(db, 0x02)).To(Equal("Unknown class"))
		Expect(pciids.SubclassName(db, 0x06, 0x80)).To(Equal("Unknown subclass"))
		Expect(pciids.InterfaceName(db, 0x06, 0x00, 0x00)).To(Equal("Unknown interface"))
		Expect(pciids.LegacySubclassName(db, 0x04)).To(Equal("Unknown subclass"))
		Expect(pciids.LegacyInterfaceName(db, 0x30)).To(Equal("Unknown interface"))
	})
})
