// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "unsafe"

// HostBigEndian reports whether the host stores integers big-endian,
// probed at the byte level rather than assumed from the platform.
func HostBigEndian() bool {
	probe := uint32(0x01020304)
	return *(*byte)(unsafe.Pointer(&probe)) == 0x01
}

// ToNetwork16 converts a host-order uint16 to network (big-endian) order.
// On big-endian hosts this is a no-op.
func ToNetwork16(v uint16) uint16 {
	if HostBigEndian() {
		return v
	}
	return v<<8 | v>>8
}

// ToNetwork32 converts a host-order uint32 to network order.
func ToNetwork32(v uint32) uint32 {
	if HostBigEndian() {
		return v
	}
	return v<<24 | (v&0xFF00)<<8 | (v>>8)&0xFF00 | v>>24
}

// ToNetwork64 converts a host-order uint64 to network order. All eight
// bytes are swapped explicitly; there is no native htonll equivalent.
func ToNetwork64(v uint64) uint64 {
	if HostBigEndian() {
		return v
	}
	return (v&0x00000000000000FF)<<56 | (v&0xFF00000000000000)>>56 |
		(v&0x000000000000FF00)<<40 | (v&0x00FF000000000000)>>40 |
		(v&0x0000000000FF0000)<<24 | (v&0x0000FF0000000000)>>24 |
		(v&0x00000000FF000000)<<8 | (v&0x000000FF00000000)>>8
}
