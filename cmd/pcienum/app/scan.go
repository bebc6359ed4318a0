// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ironcore-dev/pcienum/internal/metrics"
	"github.com/ironcore-dev/pcienum/internal/report"
	"github.com/ironcore-dev/pcienum/internal/scan"
)

type scanOptions struct {
	sweepOptions
	file            string
	output          string
	pciIDs          string
	legacyClasses   bool
	metricsTextfile string

	// openSink opens the --file target, report.OpenSink if nil.
	openSink func(path string) (io.Writer, func() error, error)
}

func NewScanCommand() *cobra.Command {
	return newScanCommand(&scanOptions{})
}

func newScanCommand(o *scanOptions) *cobra.Command {
	scanCmd := &cobra.Command{
		Use:          "scan",
		Short:        "Sweep all buses, devices and functions and print the devices found",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, o)
		},
	}
	o.addFlags(scanCmd)
	scanCmd.Flags().StringVar(&o.file, "file", "", "Write the device list to this file instead of stdout.")
	scanCmd.Flags().StringVarP(&o.output, "output", "o", string(report.FormatText), fmt.Sprintf("Output format, one of %s.", strings.Join(report.Formats(), ", ")))
	scanCmd.Flags().StringVar(&o.pciIDs, "pci-ids", "", "Path to a pci.ids file. Defaults to the system database.")
	scanCmd.Flags().BoolVar(&o.legacyClasses, "legacy-class-lookup", false, "Resolve subclass names by base class and interface names by programming interface only.")
	scanCmd.Flags().StringVar(&o.metricsTextfile, "metrics-textfile", "", "Write sweep metrics to this file in the Prometheus text format.")
	return scanCmd
}

func runScan(cmd *cobra.Command, o *scanOptions) (err error) {
	log := logr.FromContextOrDiscard(cmd.Context())

	format, err := report.ParseFormat(o.output)
	if err != nil {
		return err
	}
	db, err := openDatabase(log, o.pciIDs)
	if err != nil {
		return err
	}

	sw, err := o.open(cmd)
	if err != nil {
		return err
	}
	defer sw.close()

	var w = cmd.OutOrStdout()
	if o.file != "" {
		openSink := o.openSink
		if openSink == nil {
			openSink = report.OpenSink
		}
		sink, closeSink, openErr := openSink(o.file)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := closeSink(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file %q: %w", o.file, closeErr)
			}
		}()
		w = sink
		log.Info("Writing devices", "path", o.file)
	}

	printer, err := report.New(format, w, db, report.Options{LegacyClassLookup: o.legacyClasses})
	if err != nil {
		return err
	}
	collector := metrics.NewSweepCollector(db)

	if err := printer.Begin(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	found := 0
	duration, err := sw.run(func(d scan.Device) error {
		found++
		collector.Observe(d)
		if err := printer.Print(d); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := printer.End(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("Sweep completed", "devices", found, "duration", duration)

	if o.metricsTextfile != "" {
		collector.Finish(time.Now(), duration)
		if err := metrics.WriteTextfile(o.metricsTextfile, collector); err != nil {
			return err
		}
	}
	return nil
}
