// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

func NewAddressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "address BUS DEVICE FUNCTION REGISTER",
		Short: "Print the configuration address written to the control port",
		Long: `Print the configuration address written to the control port for a
register. Numbers are decimal unless prefixed with 0x. REGISTER is the dword
index, not the byte offset.`,
		Args: cobra.ExactArgs(4),
		RunE: runAddress,
	}
}

func runAddress(cmd *cobra.Command, args []string) error {
	limits := []struct {
		name  string
		count uint64
	}{
		{"bus", pci.BusCount},
		{"device", pci.DeviceCount},
		{"function", pci.FunctionCount},
		{"register", pci.RegisterCount},
	}
	fields := make([]uint8, len(limits))
	for i, l := range limits {
		v, err := strconv.ParseUint(args[i], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", l.name, args[i], err)
		}
		if v >= l.count {
			return fmt.Errorf("%s %d out of range, must be below %d", l.name, v, l.count)
		}
		fields[i] = uint8(v)
	}
	addr := pci.Address{Bus: fields[0], Device: fields[1], Function: fields[2], Register: fields[3]}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "0x%08X\n", pci.ComputeAddress(addr))
	return err
}
