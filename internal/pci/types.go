// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pci

import "fmt"

// Identity is the vendor/device pair of the identity register.
type Identity struct {
	VendorID uint16
	DeviceID uint16
}

func (i Identity) String() string {
	return fmt.Sprintf("%04x:%04x", i.VendorID, i.DeviceID)
}

// HeaderType is the header type byte of a function.
type HeaderType uint8

const (
	headerBridgeBit        HeaderType = 1 << 0
	headerMultiFunctionBit HeaderType = 1 << 7
)

// IsBridge reports whether bit 0 is set. Type 1 (PCI-to-PCI bridge) headers
// are the only standard odd layout.
func (h HeaderType) IsBridge() bool {
	return h&headerBridgeBit != 0
}

// IsMultiFunction reports whether the device implements more than one
// function.
func (h HeaderType) IsMultiFunction() bool {
	return h&headerMultiFunctionBit != 0
}

// Layout returns the header layout number without the multi-function flag.
func (h HeaderType) Layout() uint8 {
	return uint8(h &^ headerMultiFunctionBit)
}

func (h HeaderType) String() string {
	return fmt.Sprintf("0x%02x", uint8(h))
}

// ClassCode is the base class / subclass / programming interface triad.
type ClassCode struct {
	Base                 uint8
	Subclass             uint8
	ProgrammingInterface uint8
}

func (c ClassCode) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Base, c.Subclass, c.ProgrammingInterface)
}

// BusNumbers are the bus numbers a bridge connects.
type BusNumbers struct {
	Primary     uint8
	Secondary   uint8
	Subordinate uint8
}

// IORange is the raw I/O base and limit bytes of a bridge. Base may exceed
// Limit, which hardware uses to disable the window.
type IORange struct {
	Base  uint8
	Limit uint8
}

// InterruptPin is the legacy interrupt signal a function uses.
type InterruptPin uint8

const (
	PinNotUsed InterruptPin = iota
	PinINTA
	PinINTB
	PinINTC
	PinINTD
	PinInvalid
)

// InterruptPinFromByte classifies the raw pin byte. Values above 4 are
// reserved and map to PinInvalid.
func InterruptPinFromByte(b uint8) InterruptPin {
	if b <= uint8(PinINTD) {
		return InterruptPin(b)
	}
	return PinInvalid
}

func (p InterruptPin) String() string {
	switch p {
	case PinNotUsed:
		return "not used"
	case PinINTA:
		return "INTA"
	case PinINTB:
		return "INTB"
	case PinINTC:
		return "INTC"
	case PinINTD:
		return "INTD"
	default:
		return "invalid"
	}
}

// LineKind classifies an interrupt line value.
type LineKind uint8

const (
	LineUnused LineKind = iota
	LineIRQ
	LineInvalid
)

// LineUnusedValue marks a function not connected to the interrupt
// controller.
const LineUnusedValue uint8 = 0xFF

// DefaultMaxIRQ is the number of lines of the legacy cascaded PIC pair.
const DefaultMaxIRQ uint8 = 16

// InterruptLine is a classified interrupt line register byte.
type InterruptLine struct {
	Kind LineKind
	// Value is the raw byte, the IRQ number when Kind is LineIRQ.
	Value uint8
}

// InterruptLineFromByte classifies b against the number of IRQ lines maxIRQ.
func InterruptLineFromByte(b, maxIRQ uint8) InterruptLine {
	switch {
	case b == LineUnusedValue:
		return InterruptLine{Kind: LineUnused, Value: b}
	case b < maxIRQ:
		return InterruptLine{Kind: LineIRQ, Value: b}
	default:
		return InterruptLine{Kind: LineInvalid, Value: b}
	}
}

func (l InterruptLine) String() string {
	switch l.Kind {
	case LineUnused:
		return "unused"
	case LineIRQ:
		return fmt.Sprintf("IRQ %d", l.Value)
	default:
		return fmt.Sprintf("invalid (0x%02x)", l.Value)
	}
}
