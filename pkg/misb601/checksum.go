// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

// Checksum computes the MISB 601.2 running 16-bit checksum over data.
// Bytes at even and odd indices are summed into the high and low halves of
// a notional 16-bit word, with modulo-2^16 wraparound. This is the
// algorithm given on page 12 of the standard, not a CRC.
func Checksum(data []byte) uint16 {
	var bcc uint16
	for i, b := range data {
		bcc += uint16(b) << (8 * ((uint(i) + 1) % 2))
	}
	return bcc
}
