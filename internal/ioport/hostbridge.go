// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ioport

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

const configSpaceSize = 256

// HostBridge emulates a mechanism 1 host bridge: a 32-bit write to
// pci.ControlPort latches the address, pci.DataPort then accesses the
// selected register. Functions that were never added read as all ones and
// ignore writes.
type HostBridge struct {
	mu      sync.Mutex
	address uint32
	config  map[pci.Address][]byte
}

// NewHostBridge returns a host bridge without any functions.
func NewHostBridge() *HostBridge {
	return &HostBridge{
		config: make(map[pci.Address][]byte),
	}
}

// AddFunction installs a configuration image for the function at addr. The
// register field of addr is ignored and images shorter than 256 bytes are
// zero padded.
func (hb *HostBridge) AddFunction(addr pci.Address, image []byte) error {
	if len(image) > configSpaceSize {
		return fmt.Errorf("configuration image for %s is %d bytes, at most %d supported", addr, len(image), configSpaceSize)
	}
	key := addr.Slot(0)
	cfg := make([]byte, configSpaceSize)
	copy(cfg, image)

	hb.mu.Lock()
	defer hb.mu.Unlock()
	if _, exists := hb.config[key]; exists {
		return fmt.Errorf("function already registered at %s", key.BDF())
	}
	hb.config[key] = cfg
	return nil
}

// Functions returns the number of populated functions.
func (hb *HostBridge) Functions() int {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	return len(hb.config)
}

// Out32 implements pci.Port.
func (hb *HostBridge) Out32(port uint16, value uint32) error {
	hb.mu.Lock()
	defer hb.mu.Unlock()

	switch port {
	case pci.ControlPort:
		hb.address = value
		return nil
	case pci.DataPort:
		cfg, reg, ok := hb.configTarget()
		if ok {
			binary.LittleEndian.PutUint32(cfg[reg:], value)
		}
		return nil
	default:
		return fmt.Errorf("pci host bridge: unhandled write to I/O port 0x%04x", port)
	}
}

// In32 implements pci.Port.
func (hb *HostBridge) In32(port uint16) (uint32, error) {
	hb.mu.Lock()
	defer hb.mu.Unlock()

	switch port {
	case pci.ControlPort:
		return hb.address, nil
	case pci.DataPort:
		cfg, reg, ok := hb.configTarget()
		if !ok {
			return pci.NoDevice, nil
		}
		return binary.LittleEndian.Uint32(cfg[reg:]), nil
	default:
		return 0, fmt.Errorf("pci host bridge: unhandled read from I/O port 0x%04x", port)
	}
}

// Close implements Backend.
func (hb *HostBridge) Close() error {
	return nil
}

func (hb *HostBridge) configTarget() ([]byte, uint32, bool) {
	addr, enabled := pci.ParseConfigAddress(hb.address)
	if !enabled {
		return nil, 0, false
	}
	cfg, ok := hb.config[addr.Slot(0)]
	if !ok {
		return nil, 0, false
	}
	return cfg, uint32(addr.Register) << 2, true
}

var _ Backend = (*HostBridge)(nil)
