// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package pci implements PCI configuration mechanism 1 access and the
// decoding of the standard configuration header registers.
package pci

import (
	"fmt"
	"strings"
)

const (
	// ControlPort selects the configuration register to access.
	ControlPort uint16 = 0x0CF8
	// DataPort carries the selected register's value.
	DataPort uint16 = 0x0CFC
)

const (
	BusCount      = 256
	DeviceCount   = 32
	FunctionCount = 8
	RegisterCount = 64
)

const (
	enableBit     = 1 << 31
	busShift      = 16
	deviceShift   = 11
	functionShift = 8
	registerShift = 2
)

// Register indices (dword index, not byte offset) of the header registers
// this package knows how to decode.
const (
	IdentityRegister  uint8 = 0x00 // vendor / device ID
	ClassRegister     uint8 = 0x02 // revision / class code
	HeaderRegister    uint8 = 0x03 // cache line, latency, header type, BIST
	BusNumberRegister uint8 = 0x06 // type 1 only
	IORangeRegister   uint8 = 0x07 // type 1 only
	InterruptRegister uint8 = 0x0F // line / pin
)

// Address identifies one configuration register of one PCI function.
type Address struct {
	Bus      uint8
	Device   uint8
	Function uint8
	Register uint8
}

// Slot returns the address of register r on the same function.
func (a Address) Slot(r uint8) Address {
	a.Register = r
	return a
}

// String formats the function as upper-case
// hex without padding, e.g. "0:1F:3".
func (a Address) String() string {
	return fmt.Sprintf("%X:%X:%X", a.Bus, a.Device, a.Function)
}

// BDF formats the function in the kernel's sysfs notation without domain,
// e.g. "00:1f.3".
func (a Address) BDF() string {
	return fmt.Sprintf("%02x:%02x.%x", a.Bus, a.Device, a.Function)
}

// ComputeAddress packs a into the 32-bit value written to ControlPort. Fields
// wider than their bit range are truncated.
func ComputeAddress(a Address) uint32 {
	return enableBit |
		uint32(a.Bus)<<busShift |
		uint32(a.Device&0x1F)<<deviceShift |
		uint32(a.Function&0x07)<<functionShift |
		uint32(a.Register&0x3F)<<registerShift
}

// ParseConfigAddress is the inverse of ComputeAddress. The second result
// reports whether the enable bit was set.
func ParseConfigAddress(v uint32) (Address, bool) {
	return Address{
		Bus:      uint8(v >> busShift),
		Device:   uint8(v>>deviceShift) & 0x1F,
		Function: uint8(v>>functionShift) & 0x07,
		Register: uint8(v>>registerShift) & 0x3F,
	}, v&enableBit != 0
}

// ParseBDF parses "bus:device.function" in hex, optionally prefixed with a
// "domain:" as sysfs does. Only domain 0 is reachable through mechanism 1.
func ParseBDF(s string) (Address, error) {
	if strings.Count(s, ":") == 2 {
		domain, rest, _ := strings.Cut(s, ":")
		if strings.Trim(domain, "0") != "" {
			return Address{}, fmt.Errorf("unsupported PCI domain %q", domain)
		}
		s = rest
	}
	var bus, dev, fn uint
	if _, err := fmt.Sscanf(s, "%x:%x.%x", &bus, &dev, &fn); err != nil {
		return Address{}, fmt.Errorf("invalid PCI address %q: %w", s, err)
	}
	if bus >= BusCount || dev >= DeviceCount || fn >= FunctionCount {
		return Address{}, fmt.Errorf("PCI address %q out of range", s)
	}
	return Address{Bus: uint8(bus), Device: uint8(dev), Function: uint8(fn)}, nil
}
