// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ironcore-dev/pcienum/internal/inventory"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// ErrInconsistent is returned when the sweep and the kernel disagree.
var ErrInconsistent = errors.New("configuration space sweep and kernel disagree")

type crosscheckOptions struct {
	sweepOptions
	kernel func() (inventory.Kernel, error)
}

func NewCrosscheckCommand() *cobra.Command {
	return newCrosscheckCommand(inventory.ReadKernel)
}

func newCrosscheckCommand(kernel func() (inventory.Kernel, error)) *cobra.Command {
	o := &crosscheckOptions{kernel: kernel}
	crosscheckCmd := &cobra.Command{
		Use:          "crosscheck",
		Short:        "Compare the devices found through the I/O ports with the kernel's PCI devices",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCrosscheck(cmd, o)
		},
	}
	o.addFlags(crosscheckCmd)
	return crosscheckCmd
}

func runCrosscheck(cmd *cobra.Command, o *crosscheckOptions) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	kernel, err := o.kernel()
	if err != nil {
		return err
	}
	sw, err := o.open(cmd)
	if err != nil {
		return err
	}
	defer sw.close()

	var scanned []scan.Device
	if _, err := sw.run(func(d scan.Device) error {
		scanned = append(scanned, d)
		return nil
	}); err != nil {
		return err
	}

	result := inventory.Compare(scanned, kernel)
	log.V(1).Info("Compared devices", "ports", len(scanned), "kernel", len(kernel.Devices))
	if err := printResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.Consistent() {
		return ErrInconsistent
	}
	return nil
}

func printResult(w io.Writer, r inventory.Result) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	for _, addr := range r.OnlyPorts {
		printf("%s: found through I/O ports only\n", addr)
	}
	for _, addr := range r.OnlyKernel {
		printf("%s: found by the kernel only\n", addr)
	}
	for _, m := range r.Mismatches {
		printf("%s: identity %s through I/O ports, %s by the kernel\n", m.Address, m.Ports, m.Kernel)
	}
	for _, addr := range r.OtherDomains {
		printf("%s: outside PCI domain 0, skipped\n", addr)
	}
	if r.Consistent() {
		printf("consistent\n")
	}
	return err
}
