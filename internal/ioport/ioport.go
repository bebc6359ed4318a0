// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package ioport provides x86 I/O port backends for PCI configuration
// mechanism 1: the host's real ports and an emulated host bridge.
package ioport

import (
	"errors"

	"github.com/ironcore-dev/pcienum/internal/pci"
)

var (
	// ErrNoPrivilege is returned when the process may not execute port I/O.
	ErrNoPrivilege = errors.New("I/O privilege level change denied")
	// ErrUnsupported is returned on platforms without port I/O.
	ErrUnsupported = errors.New("port I/O is not supported on this platform")
	// ErrClosed is returned by a backend used after Close.
	ErrClosed = errors.New("port backend closed")
)

// Backend is a pci.Port that holds a resource until closed.
type Backend interface {
	pci.Port
	Close() error
}
