// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pci

// The decoders below take the full 32-bit register the field lives in. None
// of them fail: every bit pattern has an interpretation, and reading the
// right register for the decoder is up to the caller.

// DecodeIdentity splits the identity register. It returns false for NoDevice.
func DecodeIdentity(reg uint32) (Identity, bool) {
	if reg == NoDevice {
		return Identity{}, false
	}
	return Identity{
		VendorID: uint16(reg & 0xFFFF),
		DeviceID: uint16(reg >> 16),
	}, true
}

// DecodeRevision returns the revision ID held in the low byte of the class
// register.
func DecodeRevision(reg uint32) uint8 {
	return uint8(reg)
}

// DecodeClassCode splits the upper three bytes of the class register.
func DecodeClassCode(reg uint32) ClassCode {
	class := reg >> 8
	return ClassCode{
		Base:                 uint8(class >> 16),
		Subclass:             uint8(class >> 8),
		ProgrammingInterface: uint8(class),
	}
}

// DecodeHeaderType returns the header type byte (bits 23..16 of the
// header register).
func DecodeHeaderType(reg uint32) HeaderType {
	return HeaderType(reg >> 16)
}

// DecodeBridgeBusNumbers splits the bus number register of a type 1 header.
func DecodeBridgeBusNumbers(reg uint32) BusNumbers {
	return BusNumbers{
		Primary:     uint8(reg),
		Secondary:   uint8(reg >> 8),
		Subordinate: uint8(reg >> 16),
	}
}

// DecodeInterruptPin classifies the pin byte (bits 15..8) of the interrupt
// register.
func DecodeInterruptPin(reg uint32) InterruptPin {
	return InterruptPinFromByte(uint8(reg >> 8))
}

// DecodeInterruptLine classifies the line byte (bits 7..0) of the interrupt
// register against maxIRQ lines.
func DecodeInterruptLine(reg uint32, maxIRQ uint8) InterruptLine {
	return InterruptLineFromByte(uint8(reg), maxIRQ)
}

// DecodeIORange splits the I/O base (bits 7..0) and limit (bits 15..8) of a
// type 1 header. No relation between the two is assumed.
func DecodeIORange(reg uint32) IORange {
	return IORange{
		Base:  uint8(reg),
		Limit: uint8(reg >> 8),
	}
}
