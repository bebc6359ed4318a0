// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ironcore-dev/pcienum/internal/ioport"
	"github.com/ironcore-dev/pcienum/internal/pci"
	"github.com/ironcore-dev/pcienum/internal/pciids"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

// sweepOptions are the flags shared by the commands that sweep
// configuration space.
type sweepOptions struct {
	fixture   string
	registers []string
	maxIRQ    uint8
	progress  bool

	// openNative opens the host's I/O ports, ioport.OpenNative if nil.
	openNative func() (ioport.Backend, error)
}

func (o *sweepOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.fixture, "fixture", "", "Replay the devices of a YAML fixture instead of accessing the I/O ports.")
	cmd.Flags().StringSliceVar(&o.registers, "registers", []string{"all"}, fmt.Sprintf("Registers to read for present devices %v.", scan.RegisterNames()))
	cmd.Flags().Uint8Var(&o.maxIRQ, "max-irq", pci.DefaultMaxIRQ, "Number of interrupt lines, higher line values are reported invalid.")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "Show sweep progress on stderr.")
}

func openNative() (ioport.Backend, error) {
	n, err := ioport.OpenNative()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// openBackend returns the fixture host bridge when one is configured and
// the host's I/O ports otherwise.
func (o *sweepOptions) openBackend(log logr.Logger) (ioport.Backend, error) {
	if o.fixture != "" {
		hb, err := ioport.LoadFixtureFile(o.fixture)
		if err != nil {
			return nil, err
		}
		log.V(1).Info("Loaded fixture", "path", o.fixture, "functions", hb.Functions())
		return hb, nil
	}
	open := o.openNative
	if open == nil {
		open = openNative
	}
	backend, err := open()
	if err != nil {
		return nil, fmt.Errorf("failed to access I/O ports, try running as root: %w", err)
	}
	return backend, nil
}

// sweeper owns an open backend until closed.
type sweeper struct {
	cmd      *cobra.Command
	log      logr.Logger
	backend  ioport.Backend
	opts     scan.Options
	progress bool
}

// open validates the options and acquires the backend, so that privilege
// failures surface before anything is written.
func (o *sweepOptions) open(cmd *cobra.Command) (*sweeper, error) {
	log := logr.FromContextOrDiscard(cmd.Context())

	registers, err := scan.ParseRegisterSet(o.registers)
	if err != nil {
		return nil, err
	}
	if o.maxIRQ == 0 {
		return nil, fmt.Errorf("--max-irq must be greater than zero")
	}
	backend, err := o.openBackend(log)
	if err != nil {
		return nil, err
	}
	return &sweeper{
		cmd:      cmd,
		log:      log,
		backend:  backend,
		opts:     scan.Options{Registers: registers, MaxIRQ: o.maxIRQ},
		progress: o.progress,
	}, nil
}

func (s *sweeper) close() {
	if err := s.backend.Close(); err != nil {
		s.log.Error(err, "Failed to close I/O port backend")
	}
}

// run sweeps configuration space and calls visit for every device found.
func (s *sweeper) run(visit func(scan.Device) error) (time.Duration, error) {
	opts := s.opts
	if s.progress {
		bar := newProgressBar(s.cmd.ErrOrStderr())
		opts.Progress = func(uint8) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	start := time.Now()
	scanner := scan.NewScanner(s.log.WithName("scan"), pci.NewAccessor(s.backend), opts)
	if err := scanner.Scan(visit); err != nil {
		return 0, fmt.Errorf("sweep failed: %w", err)
	}
	return time.Since(start), nil
}

func newProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(pci.BusCount,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Sweeping buses"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// openDatabase loads the name database. An explicit path must load; the
// system database is optional and the builtin table backs both.
func openDatabase(log logr.Logger, path string) (pciids.Database, error) {
	loaded, err := pciids.Load(pciids.Options{Path: path})
	if err != nil {
		if path != "" {
			return nil, err
		}
		log.V(1).Info("System PCI ID database not available, using builtin names", "error", err.Error())
		return pciids.Builtin(), nil
	}
	vendors, devices := loaded.Len()
	log.V(1).Info("Loaded PCI ID database", "vendors", vendors, "devices", devices)
	return pciids.Layered{loaded, pciids.Builtin()}, nil
}
