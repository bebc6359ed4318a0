// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build linux && amd64

package ioport

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// Implemented in native_amd64.s.
func inl(port uint16) uint32
func outl(port uint16, value uint32)

// Native executes IN/OUT instructions on the host. The I/O privilege level
// belongs to one OS thread, so all accesses run on a single goroutine locked
// to the thread that raised it.
type Native struct {
	runQueue  chan func()
	closeOnce sync.Once
	done      chan struct{}
}

// OpenNative raises the I/O privilege level to 3 and returns a Native
// backend. It fails with ErrNoPrivilege unless the process runs with
// CAP_SYS_RAWIO.
func OpenNative() (*Native, error) {
	n := &Native{
		runQueue: make(chan func()),
		done:     make(chan struct{}),
	}
	started := make(chan error, 1)
	go n.start(started)
	if err := <-started; err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Native) start(started chan<- error) {
	runtime.LockOSThread()
	// The thread keeps its raised privilege level, so it is not handed back
	// to the scheduler: returning while locked terminates it.

	if err := unix.Iopl(3); err != nil {
		started <- fmt.Errorf("%w: %w", ErrNoPrivilege, err)
		return
	}
	close(started)

	for fn := range n.runQueue {
		fn()
	}
	close(n.done)
}

func (n *Native) run(fn func()) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrClosed
		}
	}()
	finished := make(chan struct{})
	n.runQueue <- func() {
		fn()
		close(finished)
	}
	<-finished
	return nil
}

// Out32 writes value to port.
func (n *Native) Out32(port uint16, value uint32) error {
	return n.run(func() { outl(port, value) })
}

// In32 reads a 32-bit value from port.
func (n *Native) In32(port uint16) (uint32, error) {
	var value uint32
	err := n.run(func() { value = inl(port) })
	return value, err
}

// Close stops the I/O goroutine and releases its thread.
func (n *Native) Close() error {
	n.closeOnce.Do(func() {
		close(n.runQueue)
		<-n.done
	})
	return nil
}

var _ Backend = (*Native)(nil)
