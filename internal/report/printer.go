// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironcore-dev/pcienum/internal/pciids"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// Separator delimits devices in the text output.
const Separator = "-------------------------"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats(), string(f)) {
		return "", fmt.Errorf("unsupported output format %q, must be one of %s", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Printer writes devices to a sink. Begin is called once before the first
// device and End once after the last one.
type Printer interface {
	Begin() error
	Print(d scan.Device) error
	End() error
}

// New returns the Printer for format f writing to w.
func New(f Format, w io.Writer, db pciids.Database, opts Options) (Printer, error) {
	switch f {
	case FormatText:
		return NewText(w, db, opts), nil
	case FormatJSON:
		return NewJSON(w, db, opts), nil
	case FormatYAML:
		return NewYAML(w, db, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
}

type textPrinter struct {
	w    io.Writer
	db   pciids.Database
	opts Options
}

// NewText returns a Printer writing one block per device, each followed by
// Separator.
func NewText(w io.Writer, db pciids.Database, opts Options) Printer {
	return &textPrinter{w: w, db: db, opts: opts}
}

func (p *textPrinter) Begin() error {
	_, err := fmt.Fprintln(p.w, Separator)
	return err
}

func (p *textPrinter) Print(d scan.Device) error {
	r := NewRecord(d, p.db, p.opts)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Address)
	fmt.Fprintf(&b, "Vendor ID: %04X, %s\n", d.Identity.VendorID, r.Vendor)
	fmt.Fprintf(&b, "Device ID: %04X, %s\n", d.Identity.DeviceID, r.Device)
	if d.Revision != nil {
		fmt.Fprintf(&b, "Revision ID: %02X\n", *d.Revision)
	}
	if c := d.Class; c != nil {
		fmt.Fprintf(&b, "Class: %02X, %s\n", c.Base, r.Class.Class)
		fmt.Fprintf(&b, "Subclass: %02X, %s\n", c.Subclass, r.Class.Subclass)
		fmt.Fprintf(&b, "Interface: %02X, %s\n", c.ProgrammingInterface, r.Class.Interface)
	}
	if h := d.Header; h != nil {
		kind := "device"
		if h.IsBridge() {
			kind = "bridge"
		}
		if h.IsMultiFunction() {
			kind += ", multi-function"
		}
		fmt.Fprintf(&b, "Header type: %02X (%s)\n", uint8(*h), kind)
	}
	if bus := d.Bus; bus != nil {
		fmt.Fprintf(&b, "Primary bus: %d, Secondary bus: %d, Subordinate bus: %d\n", bus.Primary, bus.Secondary, bus.Subordinate)
	}
	if window := d.IO; window != nil {
		fmt.Fprintf(&b, "I/O base: %02X, I/O limit: %02X\n", window.Base, window.Limit)
	}
	if irq := d.Interrupt; irq != nil {
		fmt.Fprintf(&b, "Interrupt pin: %s\n", irq.Pin)
		fmt.Fprintf(&b, "Interrupt line: %s\n", irq.Line)
	}
	b.WriteString(Separator + "\n")
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *textPrinter) End() error {
	return nil
}

// Document is the structured output of one sweep.
type Document struct {
	Devices []Record `json:"devices" yaml:"devices"`
}

type documentPrinter struct {
	db      pciids.Database
	opts    Options
	doc     Document
	encoder func(Document) error
}

func (p *documentPrinter) Begin() error {
	p.doc.Devices = []Record{}
	return nil
}

func (p *documentPrinter) Print(d scan.Device) error {
	p.doc.Devices = append(p.doc.Devices, NewRecord(d, p.db, p.opts))
	return nil
}

func (p *documentPrinter) End() error {
	return p.encoder(p.doc)
}

// NewJSON returns a Printer writing a single indented JSON Document on End.
func NewJSON(w io.Writer, db pciids.Database, opts Options) Printer {
	return &documentPrinter{db: db, opts: opts, encoder: func(doc Document) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode devices as JSON: %w", err)
		}
		return nil
	}}
}

// NewYAML returns a Printer writing a single YAML Document on End.
func NewYAML(w io.Writer, db pciids.Database, opts Options) Printer {
	return &documentPrinter{db: db, opts: opts, encoder: func(doc Document) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode devices as YAML: %w", err)
		}
		return enc.Close()
	}}
}

// OpenSink returns the writer for path. An empty path or "-" selects stdout,
// which the returned close function leaves open.
func OpenSink(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output file %q: %w", path, err)
	}
	return f, f.Close, nil
}
