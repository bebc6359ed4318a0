// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pciids

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/jaypipes/pcidb"
)

// Options select the pci.ids file to load.
type Options struct {
	// Path to a pci.ids file. When empty the well-known system locations
	// are searched.
	Path string
	// Chroot is prepended to the system locations.
	Chroot string
}

// Load reads the system pci.ids database. Fetching it from the network is
// never attempted.
func Load(o Options) (*Table, error) {
	var opts []*pcidb.WithOption
	if o.Chroot != "" {
		opts = append(opts, pcidb.WithChroot(o.Chroot))
	}
	if o.Path != "" {
		opts = append(opts, pcidb.WithDirectPath(o.Path))
	}
	db, err := pcidb.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load PCI ID database: %w", err)
	}
	return FromPCIDB(db), nil
}

// FromPCIDB indexes a parsed pci.ids database. Entries with malformed IDs
// are skipped. Classes are visited in ID order so that the legacy Subclass
// and ProgrammingInterface lookups are deterministic.
//
// pcidb only stores a class block once it reaches the next "C" line, so the
// last class of a file never arrives here. Layering the table over Builtin
// covers it; the system pci.ids ends with the unassigned class 0xff.
func FromPCIDB(db *pcidb.PCIDB) *Table {
	var (
		vendors []VendorEntry
		devices []DeviceEntry
		classes []ClassEntry
	)
	for _, key := range slices.Sorted(maps.Keys(db.Vendors)) {
		v := db.Vendors[key]
		vendorID, ok := parseID16(v.ID)
		if !ok {
			continue
		}
		vendors = append(vendors, VendorEntry{ID: vendorID, Name: v.Name})
		for _, p := range v.Products {
			deviceID, ok := parseID16(p.ID)
			if !ok {
				continue
			}
			devices = append(devices, DeviceEntry{VendorID: vendorID, DeviceID: deviceID, Name: p.Name})
		}
	}
	for _, key := range slices.Sorted(maps.Keys(db.Classes)) {
		c := db.Classes[key]
		base, ok := parseID8(c.ID)
		if !ok {
			continue
		}
		if len(c.Subclasses) == 0 {
			classes = append(classes, ClassEntry{Base: base, BaseDesc: c.Name})
			continue
		}
		for _, s := range c.Subclasses {
			sub, ok := parseID8(s.ID)
			if !ok {
				continue
			}
			entry := ClassEntry{Base: base, Subclass: sub, BaseDesc: c.Name, SubclassDesc: s.Name}
			if len(s.ProgrammingInterfaces) == 0 {
				classes = append(classes, entry)
				continue
			}
			for _, pi := range s.ProgrammingInterfaces {
				progIf, ok := parseID8(pi.ID)
				if !ok {
					continue
				}
				entry.ProgIf = progIf
				entry.InterfaceDesc = pi.Name
				classes = append(classes, entry)
			}
		}
	}
	return NewTable(vendors, devices, classes)
}

func parseID16(id string) (uint16, bool) {
	v, err := strconv.ParseUint(id, 16, 16)
	return uint16(v), err == nil
}

func parseID8(id string) (uint8, bool) {
	v, err := strconv.ParseUint(id, 16, 8)
	return uint8(v), err == nil
}
