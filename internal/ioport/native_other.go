// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux && amd64)

package ioport

// Native is unavailable on this platform.
type Native struct{}

// OpenNative always fails with ErrUnsupported.
func OpenNative() (*Native, error) {
	return nil, ErrUnsupported
}

func (*Native) Out32(uint16, uint32) error { return ErrUnsupported }
func (*Native) In32(uint16) (uint32, error) { return 0, ErrUnsupported }
func (*Native) Close() error { return nil }

var _ Backend = (*Native)(nil)
