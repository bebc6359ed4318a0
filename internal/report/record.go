// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"

	"github.com/ironcore-dev/pcienum/internal/pciids"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// Record is the presentation form of a scan.Device with names resolved.
type Record struct {
	Address       string           `json:"address" yaml:"address"`
	VendorID      string           `json:"vendorID" yaml:"vendorID"`
	Vendor        string           `json:"vendor" yaml:"vendor"`
	DeviceID      string           `json:"deviceID" yaml:"deviceID"`
	Device        string           `json:"device" yaml:"device"`
	Revision      string           `json:"revision,omitempty" yaml:"revision,omitempty"`
	Class         *ClassRecord     `json:"class,omitempty" yaml:"class,omitempty"`
	HeaderType    string           `json:"headerType,omitempty" yaml:"headerType,omitempty"`
	Bridge        bool             `json:"bridge,omitempty" yaml:"bridge,omitempty"`
	MultiFunction bool             `json:"multiFunction,omitempty" yaml:"multiFunction,omitempty"`
	Bus           *BusRecord       `json:"bus,omitempty" yaml:"bus,omitempty"`
	IO            *IORecord        `json:"io,omitempty" yaml:"io,omitempty"`
	Interrupt     *InterruptRecord `json:"interrupt,omitempty" yaml:"interrupt,omitempty"`
}

type ClassRecord struct {
	Code      string `json:"code" yaml:"code"`
	Class     string `json:"class" yaml:"class"`
	Subclass  string `json:"subclass" yaml:"subclass"`
	Interface string `json:"interface" yaml:"interface"`
}

type BusRecord struct {
	Primary     uint8 `json:"primary" yaml:"primary"`
	Secondary   uint8 `json:"secondary" yaml:"secondary"`
	Subordinate uint8 `json:"subordinate" yaml:"subordinate"`
}

type IORecord struct {
	Base  string `json:"base" yaml:"base"`
	Limit string `json:"limit" yaml:"limit"`
}

type InterruptRecord struct {
	Pin  string `json:"pin" yaml:"pin"`
	Line string `json:"line" yaml:"line"`
}

// Options tune how names are resolved.
type Options struct {
	// LegacyClassLookup resolves subclass and programming interface names
	// with the legacy keys (base class, bare programming interface) instead
	// of the full class triad.
	LegacyClassLookup bool
}

// NewRecord resolves the names of d against db.
func NewRecord(d scan.Device, db pciids.Database, opts Options) Record {
	id := d.Identity
	r := Record{
		Address:  d.Address.BDF(),
		VendorID: fmt.Sprintf("%04x", id.VendorID),
		Vendor:   pciids.VendorName(db, id.VendorID),
		DeviceID: fmt.Sprintf("%04x", id.DeviceID),
		Device:   pciids.DeviceName(db, id.VendorID, id.DeviceID),
	}
	if d.Revision != nil {
		r.Revision = fmt.Sprintf("%02x", *d.Revision)
	}
	if d.Class != nil {
		c := *d.Class
		r.Class = &ClassRecord{
			Code:  c.String(),
			Class: pciids.ClassName(db, c.Base),
		}
		if opts.LegacyClassLookup {
			r.Class.Subclass = pciids.LegacySubclassName(db, c.Base)
			r.Class.Interface = pciids.LegacyInterfaceName(db, c.ProgrammingInterface)
		} else {
			r.Class.Subclass = pciids.SubclassName(db, c.Base, c.Subclass)
			r.Class.Interface = pciids.InterfaceName(db, c.Base, c.Subclass, c.ProgrammingInterface)
		}
	}
	if d.Header != nil {
		r.HeaderType = d.Header.String()
		r.Bridge = d.Header.IsBridge()
		r.MultiFunction = d.Header.IsMultiFunction()
	}
	if d.Bus != nil {
		r.Bus = &BusRecord{Primary: d.Bus.Primary, Secondary: d.Bus.Secondary, Subordinate: d.Bus.Subordinate}
	}
	if d.IO != nil {
		r.IO = &IORecord{Base: fmt.Sprintf("%02x", d.IO.Base), Limit: fmt.Sprintf("%02x", d.IO.Limit)}
	}
	if d.Interrupt != nil {
		r.Interrupt = &InterruptRecord{Pin: d.Interrupt.Pin.String(), Line: d.Interrupt.Line.String()}
	}
	return r
}
