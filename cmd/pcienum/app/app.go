// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"flag"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/ironcore-dev/pcienum/internal/ioport"
)

const Name string = "pcienum"

const (
	exitFailure     = 1
	exitNoPrivilege = 2
)

// ExitCode maps an error returned by the command to the process exit code.
func ExitCode(err error) int {
	if errors.Is(err, ioport.ErrNoPrivilege) {
		return exitNoPrivilege
	}
	return exitFailure
}

func NewCommand() *cobra.Command {
	opts := zap.Options{
		Development: true,
	}
	goFlags := flag.NewFlagSet(Name, flag.ContinueOnError)
	opts.BindFlags(goFlags)

	root := &cobra.Command{
		Use:           Name,
		Short:         "Enumerate PCI devices through configuration mechanism 1",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := zap.New(zap.UseFlagOptions(&opts), zap.WriteTo(cmd.ErrOrStderr()))
			ctrllog.SetLogger(logger)
			cmd.SetContext(logr.NewContext(cmd.Context(), logger.WithName(Name)))
		},
	}
	root.PersistentFlags().AddGoFlagSet(goFlags)

	root.AddCommand(NewScanCommand())
	root.AddCommand(NewCrosscheckCommand())
	root.AddCommand(NewAddressCommand())
	root.AddCommand(NewDecodeCommand())
	return root
}
