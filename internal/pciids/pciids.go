// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package pciids resolves PCI vendor, device and class codes to names.
package pciids

// Placeholders reported when a database has no entry.
const (
	UnknownVendor    = "Unknown vendor"
	UnknownDevice    = "Unknown device"
	UnknownClass     = "Unknown class"
	UnknownSubclass  = "Unknown subclass"
	UnknownInterface = "Unknown interface"
)

// Database answers name queries. Every method reports false when no entry
// matches.
type Database interface {
	Vendor(vendorID uint16) (string, bool)
	Device(vendorID, deviceID uint16) (string, bool)
	Class(base uint8) (string, bool)
	// Subclass compares key against the base class of the class table and
	// returns the subclass description of the first match, as the legacy
	// lookup tables did. Use SubclassOf for an exact match.
	Subclass(key uint8) (string, bool)
	// ProgrammingInterface returns the description of the first class table
	// entry with the given programming interface, whatever its class.
	ProgrammingInterface(progIf uint8) (string, bool)
	SubclassOf(base, sub uint8) (string, bool)
	InterfaceOf(base, sub, progIf uint8) (string, bool)
}

// VendorEntry names a vendor ID.
type VendorEntry struct {
	ID   uint16
	Name string
}

// DeviceEntry names a vendor/device ID pair.
type DeviceEntry struct {
	VendorID uint16
	DeviceID uint16
	Name     string
}

// ClassEntry describes one class / subclass / programming interface triad.
// Empty descriptions do not produce entries.
type ClassEntry struct {
	Base          uint8
	Subclass      uint8
	ProgIf        uint8
	BaseDesc      string
	SubclassDesc  string
	InterfaceDesc string
}

type deviceKey struct {
	vendor, device uint16
}

type subclassKey struct {
	base, sub uint8
}

type interfaceKey struct {
	base, sub, progIf uint8
}

// Table is an in-memory Database. When several entries share a key the
// first one wins.
type Table struct {
	vendors    map[uint16]string
	devices    map[deviceKey]string
	classes    map[uint8]string
	byBase     map[uint8]string
	byProgIf   map[uint8]string
	subclasses map[subclassKey]string
	interfaces map[interfaceKey]string
}

// NewTable indexes the given entries.
func NewTable(vendors []VendorEntry, devices []DeviceEntry, classes []ClassEntry) *Table {
	t := &Table{
		vendors:    make(map[uint16]string, len(vendors)),
		devices:    make(map[deviceKey]string, len(devices)),
		classes:    make(map[uint8]string),
		byBase:     make(map[uint8]string),
		byProgIf:   make(map[uint8]string),
		subclasses: make(map[subclassKey]string),
		interfaces: make(map[interfaceKey]string),
	}
	for _, v := range vendors {
		addFirst(t.vendors, v.ID, v.Name)
	}
	for _, d := range devices {
		addFirst(t.devices, deviceKey{d.VendorID, d.DeviceID}, d.Name)
	}
	for _, c := range classes {
		addFirst(t.classes, c.Base, c.BaseDesc)
		addFirst(t.byBase, c.Base, c.SubclassDesc)
		addFirst(t.byProgIf, c.ProgIf, c.InterfaceDesc)
		addFirst(t.subclasses, subclassKey{c.Base, c.Subclass}, c.SubclassDesc)
		addFirst(t.interfaces, interfaceKey{c.Base, c.Subclass, c.ProgIf}, c.InterfaceDesc)
	}
	return t
}

func addFirst[K comparable](m map[K]string, key K, name string) {
	if name == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = name
	}
}

func (t *Table) Vendor(vendorID uint16) (string, bool) {
	name, ok := t.vendors[vendorID]
	return name, ok
}

func (t *Table) Device(vendorID, deviceID uint16) (string, bool) {
	name, ok := t.devices[deviceKey{vendorID, deviceID}]
	return name, ok
}

func (t *Table) Class(base uint8) (string, bool) {
	name, ok := t.classes[base]
	return name, ok
}

func (t *Table) Subclass(key uint8) (string, bool) {
	name, ok := t.byBase[key]
	return name, ok
}

func (t *Table) ProgrammingInterface(progIf uint8) (string, bool) {
	name, ok := t.byProgIf[progIf]
	return name, ok
}

func (t *Table) SubclassOf(base, sub uint8) (string, bool) {
	name, ok := t.subclasses[subclassKey{base, sub}]
	return name, ok
}

func (t *Table) InterfaceOf(base, sub, progIf uint8) (string, bool) {
	name, ok := t.interfaces[interfaceKey{base, sub, progIf}]
	return name, ok
}

// Len returns the number of vendors and devices in the table.
func (t *Table) Len() (vendors, devices int) {
	return len(t.vendors), len(t.devices)
}

// Layered queries databases in order and returns the first hit.
type Layered []Database

func (l Layered) lookup(fn func(Database) (string, bool)) (string, bool) {
	for _, db := range l {
		if name, ok := fn(db); ok {
			return name, true
		}
	}
	return "", false
}

func (l Layered) Vendor(vendorID uint16) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.Vendor(vendorID) })
}

func (l Layered) Device(vendorID, deviceID uint16) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.Device(vendorID, deviceID) })
}

func (l Layered) Class(base uint8) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.Class(base) })
}

func (l Layered) Subclass(key uint8) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.Subclass(key) })
}

func (l Layered) ProgrammingInterface(progIf uint8) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.ProgrammingInterface(progIf) })
}

func (l Layered) SubclassOf(base, sub uint8) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.SubclassOf(base, sub) })
}

func (l Layered) InterfaceOf(base, sub, progIf uint8) (string, bool) {
	return l.lookup(func(db Database) (string, bool) { return db.InterfaceOf(base, sub, progIf) })
}

var (
	_ Database = (*Table)(nil)
	_ Database = Layered(nil)
)
