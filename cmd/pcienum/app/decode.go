// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

type decoder func(w io.Writer, reg uint32, maxIRQ uint8) error

var decoders = map[string]decoder{
	"identity": func(w io.Writer, reg uint32, _ uint8) error {
		id, ok := pci.DecodeIdentity(reg)
		if !ok {
			_, err := fmt.Fprintln(w, "no device")
			return err
		}
		_, err := fmt.Fprintf(w, "vendor %04x device %04x\n", id.VendorID, id.DeviceID)
		return err
	},
	"class": func(w io.Writer, reg uint32, _ uint8) error {
		c := pci.DecodeClassCode(reg)
		_, err := fmt.Fprintf(w, "class %02x subclass %02x interface %02x revision %02x\n",
			c.Base, c.Subclass, c.ProgrammingInterface, pci.DecodeRevision(reg))
		return err
	},
	"header": func(w io.Writer, reg uint32, _ uint8) error {
		h := pci.DecodeHeaderType(reg)
		_, err := fmt.Fprintf(w, "header type %s layout %d bridge %t multi-function %t\n",
			h, h.Layout(), h.IsBridge(), h.IsMultiFunction())
		return err
	},
	"bus": func(w io.Writer, reg uint32, _ uint8) error {
		b := pci.DecodeBridgeBusNumbers(reg)
		_, err := fmt.Fprintf(w, "primary %d secondary %d subordinate %d\n", b.Primary, b.Secondary, b.Subordinate)
		return err
	},
	"interrupt": func(w io.Writer, reg uint32, maxIRQ uint8) error {
		_, err := fmt.Fprintf(w, "pin %s line %s\n", pci.DecodeInterruptPin(reg), pci.DecodeInterruptLine(reg, maxIRQ))
		return err
	},
	"io": func(w io.Writer, reg uint32, _ uint8) error {
		r := pci.DecodeIORange(reg)
		_, err := fmt.Fprintf(w, "base %02x limit %02x\n", r.Base, r.Limit)
		return err
	},
}

func decoderKinds() []string {
	kinds := make([]string, 0, len(decoders))
	for kind := range decoders {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func NewDecodeCommand() *cobra.Command {
	var maxIRQ uint8
	decodeCmd := &cobra.Command{
		Use:       "decode KIND VALUE",
		Short:     "Decode a raw 32-bit configuration register value",
		Long:      fmt.Sprintf("Decode a raw 32-bit configuration register value. KIND is one of %s.", strings.Join(decoderKinds(), ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: decoderKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, ok := decoders[args[0]]
			if !ok {
				return fmt.Errorf("unknown register kind %q, expected one of %s", args[0], strings.Join(decoderKinds(), ", "))
			}
			reg, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid register value %q: %w", args[1], err)
			}
			return decode(cmd.OutOrStdout(), uint32(reg), maxIRQ)
		},
	}
	decodeCmd.Flags().Uint8Var(&maxIRQ, "max-irq", pci.DefaultMaxIRQ, "Number of interrupt lines, higher line values are reported invalid.")
	return decodeCmd
}
