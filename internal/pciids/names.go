// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pciids

func nameOr(name string, ok bool, unknown string) string {
	if ok {
		return name
	}
	return unknown
}

// VendorName returns the vendor's name or UnknownVendor.
func VendorName(db Database, vendorID uint16) string {
	name, ok := db.Vendor(vendorID)
	return nameOr(name, ok, UnknownVendor)
}

// DeviceName returns the device's name or UnknownDevice.
func DeviceName(db Database, vendorID, deviceID uint16) string {
	name, ok := db.Device(vendorID, deviceID)
	return nameOr(name, ok, UnknownDevice)
}

// ClassName returns the base class description or UnknownClass.
func ClassName(db Database, base uint8) string {
	name, ok := db.Class(base)
	return nameOr(name, ok, UnknownClass)
}

// SubclassName returns the subclass description or UnknownSubclass.
func SubclassName(db Database, base, sub uint8) string {
	name, ok := db.SubclassOf(base, sub)
	return nameOr(name, ok, UnknownSubclass)
}

// InterfaceName returns the programming interface description or
// UnknownInterface.
func InterfaceName(db Database, base, sub, progIf uint8) string {
	name, ok := db.InterfaceOf(base, sub, progIf)
	return nameOr(name, ok, UnknownInterface)
}

// LegacySubclassName resolves a subclass through the legacy key, see
// Database.Subclass.
func LegacySubclassName(db Database, key uint8) string {
	name, ok := db.Subclass(key)
	return nameOr(name, ok, UnknownSubclass)
}

// LegacyInterfaceName resolves a programming interface through the legacy
// key, see Database.ProgrammingInterface.
func LegacyInterfaceName(db Database, progIf uint8) string {
	name, ok := db.ProgrammingInterface(progIf)
	return nameOr(name, ok, UnknownInterface)
}
