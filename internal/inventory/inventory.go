// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package inventory compares a configuration space sweep with the PCI
// devices the kernel enumerated.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaypipes/ghw"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/ironcore-dev/pcienum/internal/pci"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// KernelDevice is a PCI function as reported by sysfs.
type KernelDevice struct {
	Address  pci.Address
	Identity pci.Identity
	Vendor   string
	Product  string
	Driver   string
}

// Kernel is the kernel's view of the PCI topology. Functions outside PCI
// domain 0 cannot be reached through mechanism 1 and are listed apart.
type Kernel struct {
	Devices      []KernelDevice
	OtherDomains []string
}

// ReadKernel lists the kernel's PCI devices through ghw.
func ReadKernel() (Kernel, error) {
	info, err := ghw.PCI()
	if err != nil {
		return Kernel{}, fmt.Errorf("could not get PCI info: %w", err)
	}
	return FromPCIInfo(info)
}

// FromPCIInfo converts ghw's PCI info.
func FromPCIInfo(info *ghw.PCIInfo) (Kernel, error) {
	k := Kernel{}
	for _, p := range info.Devices {
		addr, err := pci.ParseBDF(p.Address)
		if err != nil {
			if !inOtherDomain(p.Address) {
				return Kernel{}, fmt.Errorf("invalid kernel PCI device: %w", err)
			}
			k.OtherDomains = append(k.OtherDomains, p.Address)
			continue
		}
		d := KernelDevice{Address: addr, Driver: p.Driver}
		if p.Vendor != nil {
			if d.Identity.VendorID, err = parseID(p.Vendor.ID); err != nil {
				return Kernel{}, fmt.Errorf("invalid vendor ID of %s: %w", p.Address, err)
			}
			d.Vendor = p.Vendor.Name
		}
		if p.Product != nil {
			if d.Identity.DeviceID, err = parseID(p.Product.ID); err != nil {
				return Kernel{}, fmt.Errorf("invalid product ID of %s: %w", p.Address, err)
			}
			d.Product = p.Product.Name
		}
		k.Devices = append(k.Devices, d)
	}
	return k, nil
}

// inOtherDomain reports whether addr is a well-formed
// "domain:bus:device.function" with a nonzero domain.
func inOtherDomain(addr string) bool {
	domain, bdf, ok := strings.Cut(addr, ":")
	if !ok {
		return false
	}
	d, err := strconv.ParseUint(domain, 16, 32)
	if err != nil || d == 0 {
		return false
	}
	_, err = pci.ParseBDF(bdf)
	return err == nil
}

func parseID(s string) (uint16, error) {
	id, err := strconv.ParseUint(s, 16, 16)
	return uint16(id), err
}

// Mismatch is a function both sides see with a different identity.
type Mismatch struct {
	Address string
	Ports   pci.Identity
	Kernel  pci.Identity
}

// Result of Compare. All address lists are sorted.
type Result struct {
	OnlyPorts    []string
	OnlyKernel   []string
	Mismatches   []Mismatch
	OtherDomains []string
}

// Consistent reports whether both views agree on domain 0.
func (r Result) Consistent() bool {
	return len(r.OnlyPorts) == 0 && len(r.OnlyKernel) == 0 && len(r.Mismatches) == 0
}

// Compare matches the swept devices against the kernel's by address.
func Compare(scanned []scan.Device, kernel Kernel) Result {
	ports := make(map[string]pci.Identity, len(scanned))
	for _, d := range scanned {
		ports[d.Address.BDF()] = d.Identity
	}
	kernelIDs := make(map[string]pci.Identity, len(kernel.Devices))
	for _, d := range kernel.Devices {
		kernelIDs[d.Address.BDF()] = d.Identity
	}

	portSet := sets.KeySet(ports)
	kernelSet := sets.KeySet(kernelIDs)

	r := Result{
		OnlyPorts:    sets.List(portSet.Difference(kernelSet)),
		OnlyKernel:   sets.List(kernelSet.Difference(portSet)),
		OtherDomains: sets.List(sets.New(kernel.OtherDomains...)),
	}
	for _, addr := range sets.List(portSet.Intersection(kernelSet)) {
		if ports[addr] != kernelIDs[addr] {
			r.Mismatches = append(r.Mismatches, Mismatch{Address: addr, Ports: ports[addr], Kernel: kernelIDs[addr]})
		}
	}
	return r
}
