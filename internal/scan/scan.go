// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package scan sweeps every bus, device and function of configuration
// space and decodes the functions that respond.
package scan

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"k8s.io/utils/ptr"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

// RegisterSet selects the registers read in addition to the identity
// register.
type RegisterSet uint8

const (
	RegisterClass RegisterSet = 1 << iota
	RegisterHeader
	RegisterBridge
	RegisterInterrupt
	RegisterIORange

	AllRegisters = RegisterClass | RegisterHeader | RegisterBridge | RegisterInterrupt | RegisterIORange
)

var registerNames = []struct {
	name string
	set  RegisterSet
}{
	{"class", RegisterClass},
	{"header", RegisterHeader},
	{"bridge", RegisterBridge},
	{"interrupt", RegisterInterrupt},
	{"io", RegisterIORange},
}

// RegisterNames lists the names accepted by ParseRegisterSet.
func RegisterNames() []string {
	names := make([]string, 0, len(registerNames)+1)
	for _, r := range registerNames {
		names = append(names, r.name)
	}
	return append(names, "all")
}

// ParseRegisterSet converts register names to a RegisterSet.
func ParseRegisterSet(names []string) (RegisterSet, error) {
	var set RegisterSet
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "all" {
			set |= AllRegisters
			continue
		}
		found := false
		for _, r := range registerNames {
			if r.name == name {
				set |= r.set
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown register %q, expected one of %s", name, strings.Join(RegisterNames(), ", "))
		}
	}
	return set, nil
}

// Has reports whether all registers of other are selected.
func (s RegisterSet) Has(other RegisterSet) bool {
	return s&other == other
}

// Interrupt is the decoded interrupt register.
type Interrupt struct {
	Pin  pci.InterruptPin
	Line pci.InterruptLine
}

// Device is one responding function. Optional parts are nil when their
// register was not selected or does not apply to the header layout.
type Device struct {
	Address   pci.Address
	Identity  pci.Identity
	Class     *pci.ClassCode
	Revision  *uint8
	Header    *pci.HeaderType
	Bus       *pci.BusNumbers
	IO        *pci.IORange
	Interrupt *Interrupt
}

// IsBridge reports whether the header type of d was read and is a bridge.
func (d Device) IsBridge() bool {
	return d.Header != nil && d.Header.IsBridge()
}

// Options configure a Scanner.
type Options struct {
	// Registers selects what is read besides the identity register. The
	// zero set reads the identity register only; pass AllRegisters for a
	// full decode.
	Registers RegisterSet
	// MaxIRQ is the number of interrupt lines. Zero selects
	// pci.DefaultMaxIRQ.
	MaxIRQ uint8
	// Progress is called after each bus has been swept.
	Progress func(bus uint8)
}

// Scanner sweeps configuration space through a pci.ConfigReader.
type Scanner struct {
	reader pci.ConfigReader
	opts   Options
	log    logr.Logger
}

// NewScanner returns a Scanner reading through reader.
func NewScanner(log logr.Logger, reader pci.ConfigReader, opts Options) *Scanner {
	if opts.MaxIRQ == 0 {
		opts.MaxIRQ = pci.DefaultMaxIRQ
	}
	return &Scanner{
		reader: reader,
		opts:   opts,
		log:    log,
	}
}

// Scan visits every bus/device/function in ascending order and calls visit
// for each one that responds. A read error or an error returned by visit
// ends the sweep.
func (s *Scanner) Scan(visit func(Device) error) error {
	found := 0
	for bus := 0; bus < pci.BusCount; bus++ {
		for dev := 0; dev < pci.DeviceCount; dev++ {
			for fn := 0; fn < pci.FunctionCount; fn++ {
				addr := pci.Address{Bus: uint8(bus), Device: uint8(dev), Function: uint8(fn)}
				device, ok, err := s.Probe(addr)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				found++
				if err := visit(device); err != nil {
					return err
				}
			}
		}
		if s.opts.Progress != nil {
			s.opts.Progress(uint8(bus))
		}
	}
	s.log.V(1).Info("Sweep finished", "devices", found)
	return nil
}

// Collect sweeps configuration space and returns all responding functions.
func (s *Scanner) Collect() ([]Device, error) {
	var devices []Device
	err := s.Scan(func(d Device) error {
		devices = append(devices, d)
		return nil
	})
	return devices, err
}

// Probe reads and decodes one function. It reports false when the slot
// is empty, in which case no further register is read.
func (s *Scanner) Probe(addr pci.Address) (Device, bool, error) {
	addr = addr.Slot(pci.IdentityRegister)
	reg, err := s.reader.ReadRegister(addr)
	if err != nil {
		return Device{}, false, err
	}
	identity, ok := pci.DecodeIdentity(reg)
	if !ok {
		return Device{}, false, nil
	}

	d := Device{Address: addr, Identity: identity}
	sel := s.opts.Registers

	if sel.Has(RegisterClass) {
		reg, err := s.reader.ReadRegister(addr.Slot(pci.ClassRegister))
		if err != nil {
			return Device{}, false, err
		}
		d.Class = ptr.To(pci.DecodeClassCode(reg))
		d.Revision = ptr.To(pci.DecodeRevision(reg))
	}

	if sel&(RegisterHeader|RegisterBridge|RegisterIORange) != 0 {
		reg, err := s.reader.ReadRegister(addr.Slot(pci.HeaderRegister))
		if err != nil {
			return Device{}, false, err
		}
		d.Header = ptr.To(pci.DecodeHeaderType(reg))
	}

	if d.IsBridge() && sel.Has(RegisterBridge) {
		reg, err := s.reader.ReadRegister(addr.Slot(pci.BusNumberRegister))
		if err != nil {
			return Device{}, false, err
		}
		d.Bus = ptr.To(pci.DecodeBridgeBusNumbers(reg))
	}

	if d.IsBridge() && sel.Has(RegisterIORange) {
		reg, err := s.reader.ReadRegister(addr.Slot(pci.IORangeRegister))
		if err != nil {
			return Device{}, false, err
		}
		d.IO = ptr.To(pci.DecodeIORange(reg))
	}

	if sel.Has(RegisterInterrupt) {
		reg, err := s.reader.ReadRegister(addr.Slot(pci.InterruptRegister))
		if err != nil {
			return Device{}, false, err
		}
		d.Interrupt = &Interrupt{
			Pin:  pci.DecodeInterruptPin(reg),
			Line: pci.DecodeInterruptLine(reg, s.opts.MaxIRQ),
		}
	}

	s.log.V(2).Info("Found device", "address", addr.BDF(), "vendorID", fmt.Sprintf("%04x", identity.VendorID),
		"deviceID", fmt.Sprintf("%04x", identity.DeviceID))
	return d, true, nil
}
