// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ioport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

// Fixture describes the functions of an emulated host bridge.
type Fixture struct {
	Devices []DeviceSpec `yaml:"devices"`
}

// DeviceSpec describes the standard header fields of one function.
type DeviceSpec struct {
	// Address in "bus:device.function" hex notation.
	Address       string       `yaml:"address"`
	VendorID      uint16       `yaml:"vendorID"`
	DeviceID      uint16       `yaml:"deviceID"`
	Revision      uint8        `yaml:"revision,omitempty"`
	Class         uint32       `yaml:"class,omitempty"`
	HeaderType    uint8        `yaml:"headerType,omitempty"`
	InterruptLine *uint8       `yaml:"interruptLine,omitempty"`
	InterruptPin  uint8        `yaml:"interruptPin,omitempty"`
	Bus           *BusSpec     `yaml:"bus,omitempty"`
	IO            *IORangeSpec `yaml:"io,omitempty"`
}

// BusSpec are the bus numbers of a bridge.
type BusSpec struct {
	Primary     uint8 `yaml:"primary"`
	Secondary   uint8 `yaml:"secondary"`
	Subordinate uint8 `yaml:"subordinate"`
}

// IORangeSpec is the raw I/O window of a bridge.
type IORangeSpec struct {
	Base  uint8 `yaml:"base"`
	Limit uint8 `yaml:"limit"`
}

// Image renders the 256-byte configuration space of d.
func (d DeviceSpec) Image() []byte {
	img := make([]byte, configSpaceSize)
	binary.LittleEndian.PutUint16(img[0x00:], d.VendorID)
	binary.LittleEndian.PutUint16(img[0x02:], d.DeviceID)
	img[0x08] = d.Revision
	img[0x09] = byte(d.Class)       // Prog IF
	img[0x0A] = byte(d.Class >> 8)  // Subclass
	img[0x0B] = byte(d.Class >> 16) // Base class
	img[0x0E] = d.HeaderType
	if d.Bus != nil {
		img[0x18] = d.Bus.Primary
		img[0x19] = d.Bus.Secondary
		img[0x1A] = d.Bus.Subordinate
	}
	if d.IO != nil {
		img[0x1C] = d.IO.Base
		img[0x1D] = d.IO.Limit
	}
	img[0x3C] = pci.LineUnusedValue
	if d.InterruptLine != nil {
		img[0x3C] = *d.InterruptLine
	}
	img[0x3D] = d.InterruptPin
	return img
}

// NewFixtureHostBridge returns a host bridge populated with the fixture's
// devices.
func NewFixtureHostBridge(f Fixture) (*HostBridge, error) {
	hb := NewHostBridge()
	for _, d := range f.Devices {
		addr, err := pci.ParseBDF(d.Address)
		if err != nil {
			return nil, err
		}
		if err := hb.AddFunction(addr, d.Image()); err != nil {
			return nil, err
		}
	}
	return hb, nil
}

// LoadFixture decodes a YAML fixture from r.
func LoadFixture(r io.Reader) (*HostBridge, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return NewFixtureHostBridge(f)
}

// LoadFixtureFile decodes the YAML fixture at path.
func LoadFixtureFile(path string) (*HostBridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return LoadFixture(file)
}
