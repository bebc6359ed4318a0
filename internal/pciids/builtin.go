// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pciids

import "sync"

// Builtin returns the compiled-in table. It covers the PCI-SIG class code
// assignments and a selection of common vendors and devices; Load provides
// the full pci.ids database.
var Builtin = sync.OnceValue(func() *Table {
	return NewTable(builtinVendors, builtinDevices, builtinClasses)
})

var builtinVendors = []VendorEntry{
	{0x1000, "Broadcom / LSI"},
	{0x1002, "Advanced Micro Devices, Inc. [AMD/ATI]"},
	{0x1014, "IBM"},
	{0x1022, "Advanced Micro Devices, Inc. [AMD]"},
	{0x102B, "Matrox Electronics Systems Ltd."},
	{0x1033, "NEC Corporation"},
	{0x1039, "Silicon Integrated Systems [SiS]"},
	{0x103C, "Hewlett-Packard Company"},
	{0x106B, "Apple Inc."},
	{0x1077, "QLogic Corp."},
	{0x108E, "Oracle/SUN"},
	{0x10B5, "PLX Technology, Inc."},
	{0x10B7, "3Com Corporation"},
	{0x10DE, "NVIDIA Corporation"},
	{0x10EC, "Realtek Semiconductor Co., Ltd."},
	{0x1106, "VIA Technologies, Inc."},
	{0x1137, "Cisco Systems Inc"},
	{0x1166, "Broadcom"},
	{0x1180, "Ricoh Co Ltd"},
	{0x1217, "O2 Micro, Inc."},
	{0x1234, "Technical Corp."},
	{0x126F, "Silicon Motion, Inc."},
	{0x1274, "Ensoniq"},
	{0x12D8, "Pericom Semiconductor"},
	{0x1344, "Micron Technology Inc"},
	{0x144D, "Samsung Electronics Co Ltd"},
	{0x14E4, "Broadcom Inc. and subsidiaries"},
	{0x15AD, "VMware"},
	{0x15B3, "Mellanox Technologies"},
	{0x168C, "Qualcomm Atheros"},
	{0x1969, "Qualcomm Atheros"},
	{0x19A2, "Emulex Corporation"},
	{0x1AF4, "Red Hat, Inc."},
	{0x1B21, "ASMedia Technology Inc."},
	{0x1B36, "Red Hat, Inc."},
	{0x1B4B, "Marvell Technology Group Ltd."},
	{0x1C5C, "SK hynix"},
	{0x1D0F, "Amazon.com, Inc."},
	{0x1E0F, "KIOXIA Corporation"},
	{0x5333, "S3 Graphics Ltd."},
	{0x8086, "Intel Corporation"},
	{0x80EE, "InnoTek Systemberatung GmbH"},
	{0x9005, "Adaptec"},
}

var builtinDevices = []DeviceEntry{
	{0x1022, 0x1480, "Starship/Matisse Root Complex"},
	{0x1022, 0x1482, "Starship/Matisse PCIe Dummy Host Bridge"},
	{0x10DE, 0x1EB8, "TU104GL [Tesla T4]"},
	{0x10EC, 0x8139, "RTL-8100/8101L/8139 PCI Fast Ethernet Adapter"},
	{0x10EC, 0x8168, "RTL8111/8168/8411 PCI Express Gigabit Ethernet Controller"},
	{0x10EC, 0x8125, "RTL8125 2.5GbE Controller"},
	{0x14E4, 0x1657, "NetXtreme BCM5719 Gigabit Ethernet PCIe"},
	{0x15AD, 0x0405, "SVGA II Adapter"},
	{0x15AD, 0x07A0, "PCI Express Root Port"},
	{0x15B3, 0x1017, "MT27800 Family [ConnectX-5]"},
	{0x1AF4, 0x1000, "Virtio network device"},
	{0x1AF4, 0x1001, "Virtio block device"},
	{0x1AF4, 0x1041, "Virtio 1.0 network device"},
	{0x1AF4, 0x1042, "Virtio 1.0 block device"},
	{0x1B36, 0x000C, "QEMU PCIe Root port"},
	{0x1B36, 0x000D, "QEMU XHCI Host Controller"},
	{0x1234, 0x1111, "QEMU Virtual Video Controller"},
	{0x8086, 0x100E, "82540EM Gigabit Ethernet Controller"},
	{0x8086, 0x10D3, "82574L Gigabit Network Connection"},
	{0x8086, 0x1237, "440FX - 82441FX PMC [Natoma]"},
	{0x8086, 0x1521, "I350 Gigabit Network Connection"},
	{0x8086, 0x1572, "Ethernet Controller X710 for 10GbE SFP+"},
	{0x8086, 0x2415, "82801AA AC'97 Audio Controller"},
	{0x8086, 0x2918, "82801IB (ICH9) LPC Interface Controller"},
	{0x8086, 0x2922, "82801IR/IO/IH (ICH9R/DO/DH) 6 port SATA Controller [AHCI mode]"},
	{0x8086, 0x2930, "82801I (ICH9 Family) SMBus Controller"},
	{0x8086, 0x29C0, "82G33/G31/P35/P31 Express DRAM Controller"},
	{0x8086, 0x7000, "82371SB PIIX3 ISA [Natoma/Triton II]"},
	{0x8086, 0x7010, "82371SB PIIX3 IDE [Natoma/Triton II]"},
	{0x8086, 0x7020, "82371SB PIIX3 USB [Natoma/Triton II]"},
	{0x8086, 0x7110, "82371AB/EB/MB PIIX4 ISA"},
	{0x8086, 0x7111, "82371AB/EB/MB PIIX4 IDE"},
	{0x8086, 0x7113, "82371AB/EB/MB PIIX4 ACPI"},
	{0x8086, 0x7190, "440BX/ZX/DX - 82443BX/ZX/DX Host bridge"},
	{0x8086, 0x7191, "440BX/ZX/DX - 82443BX/ZX/DX AGP bridge"},
	{0x8086, 0xA348, "Cannon Lake PCH cAVS"},
	{0x80EE, 0xBEEF, "VirtualBox Graphics Adapter"},
	{0x80EE, 0xCAFE, "VirtualBox Guest Service"},
}

var builtinClasses = []ClassEntry{
	{0x00, 0x00, 0x00, "Unclassified device", "Non-VGA unclassified device", ""},
	{0x00, 0x01, 0x00, "Unclassified device", "VGA compatible unclassified device", ""},

	{0x01, 0x00, 0x00, "Mass storage controller", "SCSI storage controller", ""},
	{0x01, 0x01, 0x00, "Mass storage controller", "IDE interface", "ISA Compatibility mode-only controller"},
	{0x01, 0x01, 0x05, "Mass storage controller", "IDE interface", "PCI native mode-only controller"},
	{0x01, 0x01, 0x0A, "Mass storage controller", "IDE interface", "ISA Compatibility mode controller, supports both channels switched to PCI native mode"},
	{0x01, 0x01, 0x0F, "Mass storage controller", "IDE interface", "PCI native mode controller, supports both channels switched to ISA compatibility mode"},
	{0x01, 0x01, 0x80, "Mass storage controller", "IDE interface", "ISA Compatibility mode-only controller, supports bus mastering"},
	{0x01, 0x01, 0x85, "Mass storage controller", "IDE interface", "PCI native mode-only controller, supports bus mastering"},
	{0x01, 0x01, 0x8A, "Mass storage controller", "IDE interface", "ISA Compatibility mode controller, supports both channels switched to PCI native mode, supports bus mastering"},
	{0x01, 0x01, 0x8F, "Mass storage controller", "IDE interface", "PCI native mode controller, supports both channels switched to ISA compatibility mode, supports bus mastering"},
	{0x01, 0x02, 0x00, "Mass storage controller", "Floppy disk controller", ""},
	{0x01, 0x03, 0x00, "Mass storage controller", "IPI bus controller", ""},
	{0x01, 0x04, 0x00, "Mass storage controller", "RAID bus controller", ""},
	{0x01, 0x05, 0x20, "Mass storage controller", "ATA controller", "ADMA single stepping"},
	{0x01, 0x05, 0x30, "Mass storage controller", "ATA controller", "ADMA continuous operation"},
	{0x01, 0x06, 0x00, "Mass storage controller", "SATA controller", "Vendor specific"},
	{0x01, 0x06, 0x01, "Mass storage controller", "SATA controller", "AHCI 1.0"},
	{0x01, 0x06, 0x02, "Mass storage controller", "SATA controller", "Serial Storage Bus"},
	{0x01, 0x07, 0x00, "Mass storage controller", "Serial Attached SCSI controller", ""},
	{0x01, 0x07, 0x01, "Mass storage controller", "Serial Attached SCSI controller", "Serial Storage Bus"},
	{0x01, 0x08, 0x01, "Mass storage controller", "Non-Volatile memory controller", "NVMHCI"},
	{0x01, 0x08, 0x02, "Mass storage controller", "Non-Volatile memory controller", "NVM Express"},
	{0x01, 0x80, 0x00, "Mass storage controller", "Mass storage controller", ""},

	{0x02, 0x00, 0x00, "Network controller", "Ethernet controller", ""},
	{0x02, 0x01, 0x00, "Network controller", "Token ring network controller", ""},
	{0x02, 0x02, 0x00, "Network controller", "FDDI network controller", ""},
	{0x02, 0x03, 0x00, "Network controller", "ATM network controller", ""},
	{0x02, 0x04, 0x00, "Network controller", "ISDN controller", ""},
	{0x02, 0x05, 0x00, "Network controller", "WorldFip controller", ""},
	{0x02, 0x06, 0x00, "Network controller", "PICMG controller", ""},
	{0x02, 0x07, 0x00, "Network controller", "Infiniband controller", ""},
	{0x02, 0x08, 0x00, "Network controller", "Fabric controller", ""},
	{0x02, 0x80, 0x00, "Network controller", "Network controller", ""},

	{0x03, 0x00, 0x00, "Display controller", "VGA compatible controller", "VGA controller"},
	{0x03, 0x00, 0x01, "Display controller", "VGA compatible controller", "8514 controller"},
	{0x03, 0x01, 0x00, "Display controller", "XGA compatible controller", ""},
	{0x03, 0x02, 0x00, "Display controller", "3D controller", ""},
	{0x03, 0x80, 0x00, "Display controller", "Display controller", ""},

	{0x04, 0x00, 0x00, "Multimedia controller", "Multimedia video controller", ""},
	{0x04, 0x01, 0x00, "Multimedia controller", "Multimedia audio controller", ""},
	{0x04, 0x02, 0x00, "Multimedia controller", "Computer telephony device", ""},
	{0x04, 0x03, 0x00, "Multimedia controller", "Audio device", ""},
	{0x04, 0x80, 0x00, "Multimedia controller", "Multimedia controller", ""},

	{0x05, 0x00, 0x00, "Memory controller", "RAM memory", ""},
	{0x05, 0x01, 0x00, "Memory controller", "FLASH memory", ""},
	{0x05, 0x80, 0x00, "Memory controller", "Memory controller", ""},

	{0x06, 0x00, 0x00, "Bridge", "Host bridge", ""},
	{0x06, 0x01, 0x00, "Bridge", "ISA bridge", ""},
	{0x06, 0x02, 0x00, "Bridge", "EISA bridge", ""},
	{0x06, 0x03, 0x00, "Bridge", "MicroChannel bridge", ""},
	{0x06, 0x04, 0x00, "Bridge", "PCI bridge", "Normal decode"},
	{0x06, 0x04, 0x01, "Bridge", "PCI bridge", "Subtractive decode"},
	{0x06, 0x05, 0x00, "Bridge", "PCMCIA bridge", ""},
	{0x06, 0x06, 0x00, "Bridge", "NuBus bridge", ""},
	{0x06, 0x07, 0x00, "Bridge", "CardBus bridge", ""},
	{0x06, 0x08, 0x00, "Bridge", "RACEway bridge", "Transparent mode"},
	{0x06, 0x08, 0x01, "Bridge", "RACEway bridge", "Endpoint mode"},
	{0x06, 0x09, 0x40, "Bridge", "Semi-transparent PCI-to-PCI bridge", "Primary bus towards host CPU"},
	{0x06, 0x09, 0x80, "Bridge", "Semi-transparent PCI-to-PCI bridge", "Secondary bus towards host CPU"},
	{0x06, 0x0A, 0x00, "Bridge", "InfiniBand to PCI host bridge", ""},
	{0x06, 0x80, 0x00, "Bridge", "Bridge", ""},

	{0x07, 0x00, 0x00, "Communication controller", "Serial controller", "8250"},
	{0x07, 0x00, 0x01, "Communication controller", "Serial controller", "16450"},
	{0x07, 0x00, 0x02, "Communication controller", "Serial controller", "16550"},
	{0x07, 0x00, 0x03, "Communication controller", "Serial controller", "16650"},
	{0x07, 0x00, 0x04, "Communication controller", "Serial controller", "16750"},
	{0x07, 0x00, 0x05, "Communication controller", "Serial controller", "16850"},
	{0x07, 0x00, 0x06, "Communication controller", "Serial controller", "16950"},
	{0x07, 0x01, 0x00, "Communication controller", "Parallel controller", "SPP"},
	{0x07, 0x01, 0x01, "Communication controller", "Parallel controller", "BiDir"},
	{0x07, 0x01, 0x02, "Communication controller", "Parallel controller", "ECP"},
	{0x07, 0x01, 0x03, "Communication controller", "Parallel controller", "IEEE1284"},
	{0x07, 0x01, 0xFE, "Communication controller", "Parallel controller", "IEEE1284 Target"},
	{0x07, 0x02, 0x00, "Communication controller", "Multiport serial controller", ""},
	{0x07, 0x03, 0x00, "Communication controller", "Modem", "Generic"},
	{0x07, 0x03, 0x01, "Communication controller", "Modem", "Hayes/16450"},
	{0x07, 0x03, 0x02, "Communication controller", "Modem", "Hayes/16550"},
	{0x07, 0x03, 0x03, "Communication controller", "Modem", "Hayes/16650"},
	{0x07, 0x03, 0x04, "Communication controller", "Modem", "Hayes/16750"},
	{0x07, 0x04, 0x00, "Communication controller", "GPIB controller", ""},
	{0x07, 0x05, 0x00, "Communication controller", "Smard Card controller", ""},
	{0x07, 0x80, 0x00, "Communication controller", "Communication controller", ""},

	{0x08, 0x00, 0x00, "Generic system peripheral", "PIC", "8259"},
	{0x08, 0x00, 0x01, "Generic system peripheral", "PIC", "ISA PIC"},
	{0x08, 0x00, 0x02, "Generic system peripheral", "PIC", "EISA PIC"},
	{0x08, 0x00, 0x10, "Generic system peripheral", "PIC", "IO-APIC"},
	{0x08, 0x00, 0x20, "Generic system peripheral", "PIC", "IO(X)-APIC"},
	{0x08, 0x01, 0x00, "Generic system peripheral", "DMA controller", "8237"},
	{0x08, 0x01, 0x01, "Generic system peripheral", "DMA controller", "ISA DMA"},
	{0x08, 0x01, 0x02, "Generic system peripheral", "DMA controller", "EISA DMA"},
	{0x08, 0x02, 0x00, "Generic system peripheral", "Timer", "8254"},
	{0x08, 0x02, 0x01, "Generic system peripheral", "Timer", "ISA Timer"},
	{0x08, 0x02, 0x02, "Generic system peripheral", "Timer", "EISA Timers"},
	{0x08, 0x02, 0x03, "Generic system peripheral", "Timer", "HPET"},
	{0x08, 0x03, 0x00, "Generic system peripheral", "RTC", "Generic"},
	{0x08, 0x03, 0x01, "Generic system peripheral", "RTC", "ISA RTC"},
	{0x08, 0x04, 0x00, "Generic system peripheral", "PCI Hot-plug controller", ""},
	{0x08, 0x05, 0x00, "Generic system peripheral", "SD Host controller", ""},
	{0x08, 0x06, 0x00, "Generic system peripheral", "IOMMU", ""},
	{0x08, 0x80, 0x00, "Generic system peripheral", "System peripheral", ""},

	{0x09, 0x00, 0x00, "Input device controller", "Keyboard controller", ""},
	{0x09, 0x01, 0x00, "Input device controller", "Digitizer Pen", ""},
	{0x09, 0x02, 0x00, "Input device controller", "Mouse controller", ""},
	{0x09, 0x03, 0x00, "Input device controller", "Scanner controller", ""},
	{0x09, 0x04, 0x00, "Input device controller", "Gameport controller", "Generic"},
	{0x09, 0x04, 0x10, "Input device controller", "Gameport controller", "Extended"},
	{0x09, 0x80, 0x00, "Input device controller", "Input device controller", ""},

	{0x0A, 0x00, 0x00, "Docking station", "Generic Docking Station", ""},
	{0x0A, 0x80, 0x00, "Docking station", "Docking Station", ""},

	{0x0B, 0x00, 0x00, "Processor", "386", ""},
	{0x0B, 0x01, 0x00, "Processor", "486", ""},
	{0x0B, 0x02, 0x00, "Processor", "Pentium", ""},
	{0x0B, 0x10, 0x00, "Processor", "Alpha", ""},
	{0x0B, 0x20, 0x00, "Processor", "Power PC", ""},
	{0x0B, 0x30, 0x00, "Processor", "MIPS", ""},
	{0x0B, 0x40, 0x00, "Processor", "Co-processor", ""},

	{0x0C, 0x00, 0x00, "Serial bus controller", "FireWire (IEEE 1394)", "Generic"},
	{0x0C, 0x00, 0x10, "Serial bus controller", "FireWire (IEEE 1394)", "OHCI"},
	{0x0C, 0x01, 0x00, "Serial bus controller", "ACCESS Bus", ""},
	{0x0C, 0x02, 0x00, "Serial bus controller", "SSA", ""},
	{0x0C, 0x03, 0x00, "Serial bus controller", "USB controller", "UHCI"},
	{0x0C, 0x03, 0x10, "Serial bus controller", "USB controller", "OHCI"},
	{0x0C, 0x03, 0x20, "Serial bus controller", "USB controller", "EHCI"},
	{0x0C, 0x03, 0x30, "Serial bus controller", "USB controller", "XHCI"},
	{0x0C, 0x03, 0x40, "Serial bus controller", "USB controller", "USB4 Host Interface"},
	{0x0C, 0x03, 0x80, "Serial bus controller", "USB controller", "Unspecified"},
	{0x0C, 0x03, 0xFE, "Serial bus controller", "USB controller", "USB Device"},
	{0x0C, 0x04, 0x00, "Serial bus controller", "Fibre Channel", ""},
	{0x0C, 0x05, 0x00, "Serial bus controller", "SMBus", ""},
	{0x0C, 0x06, 0x00, "Serial bus controller", "InfiniBand", ""},
	{0x0C, 0x07, 0x00, "Serial bus controller", "IPMI Interface", "SMIC"},
	{0x0C, 0x07, 0x01, "Serial bus controller", "IPMI Interface", "KCS"},
	{0x0C, 0x07, 0x02, "Serial bus controller", "IPMI Interface", "BT (Block Transfer)"},
	{0x0C, 0x08, 0x00, "Serial bus controller", "SERCOS interface", ""},
	{0x0C, 0x09, 0x00, "Serial bus controller", "CANBUS", ""},
	{0x0C, 0x80, 0x00, "Serial bus controller", "Serial bus controller", ""},

	{0x0D, 0x00, 0x00, "Wireless controller", "IRDA controller", ""},
	{0x0D, 0x01, 0x00, "Wireless controller", "Consumer IR controller", ""},
	{0x0D, 0x10, 0x00, "Wireless controller", "RF controller", ""},
	{0x0D, 0x11, 0x00, "Wireless controller", "Bluetooth", ""},
	{0x0D, 0x12, 0x00, "Wireless controller", "Broadband", ""},
	{0x0D, 0x20, 0x00, "Wireless controller", "802.1a controller", ""},
	{0x0D, 0x21, 0x00, "Wireless controller", "802.1b controller", ""},
	{0x0D, 0x80, 0x00, "Wireless controller", "Wireless controller", ""},

	{0x0E, 0x00, 0x00, "Intelligent controller", "I2O", ""},

	{0x0F, 0x01, 0x00, "Satellite communications controller", "Satellite TV controller", ""},
	{0x0F, 0x02, 0x00, "Satellite communications controller", "Satellite audio communication controller", ""},
	{0x0F, 0x03, 0x00, "Satellite communications controller", "Satellite voice communication controller", ""},
	{0x0F, 0x04, 0x00, "Satellite communications controller", "Satellite data communication controller", ""},

	{0x10, 0x00, 0x00, "Encryption controller", "Network and computing encryption device", ""},
	{0x10, 0x10, 0x00, "Encryption controller", "Entertainment encryption device", ""},
	{0x10, 0x80, 0x00, "Encryption controller", "Encryption controller", ""},

	{0x11, 0x00, 0x00, "Signal processing controller", "DPIO module", ""},
	{0x11, 0x01, 0x00, "Signal processing controller", "Performance counters", ""},
	{0x11, 0x10, 0x00, "Signal processing controller", "Communication synchronizer", ""},
	{0x11, 0x20, 0x00, "Signal processing controller", "Signal processing management", ""},
	{0x11, 0x80, 0x00, "Signal processing controller", "Signal processing controller", ""},

	{0x12, 0x00, 0x00, "Processing accelerators", "Processing accelerators", ""},

	{0x13, 0x00, 0x00, "Non-Essential Instrumentation", "", ""},

	{0x40, 0x00, 0x00, "Coprocessor", "", ""},

	{0xFF, 0x00, 0x00, "Unassigned class", "", ""},
}
