// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pci

import (
	"fmt"
	"sync"
)

// NoDevice is read back from the identity register of an unpopulated slot.
const NoDevice uint32 = 0xFFFFFFFF

// Port performs 32-bit accesses to x86 I/O ports.
type Port interface {
	Out32(port uint16, value uint32) error
	In32(port uint16) (uint32, error)
}

// ConfigReader reads one 32-bit configuration register.
type ConfigReader interface {
	ReadRegister(addr Address) (uint32, error)
}

// Accessor reads configuration space through mechanism 1 on a Port.
type Accessor struct {
	port Port

	// The address latched on ControlPort selects what DataPort returns, so
	// the write and the read must not interleave with another access.
	mu sync.Mutex
}

// NewAccessor returns an Accessor issuing its I/O on port.
func NewAccessor(port Port) *Accessor {
	return &Accessor{port: port}
}

// ReadRegister writes the configuration address of addr to ControlPort and
// reads the register from DataPort.
func (a *Accessor) ReadRegister(addr Address) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.port.Out32(ControlPort, ComputeAddress(addr)); err != nil {
		return 0, fmt.Errorf("failed to select register %s/%#02x: %w", addr, addr.Register, err)
	}
	value, err := a.port.In32(DataPort)
	if err != nil {
		return 0, fmt.Errorf("failed to read register %s/%#02x: %w", addr, addr.Register, err)
	}
	return value, nil
}

var _ ConfigReader = (*Accessor)(nil)
