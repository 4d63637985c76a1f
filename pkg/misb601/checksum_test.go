// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "testing"

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0x0000},
		{"single byte goes to high half", []byte{0xAB}, 0xAB00},
		{"two bytes form one word", []byte{0x01, 0x02}, 0x0102},
		{"wraparound", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFE},
		{"key prefix", []byte{0x06, 0x0E, 0x2B, 0x34}, 0x3142},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checksum(tt.data); got != tt.want {
				t.Errorf("Checksum(% X) = 0x%04X, want 0x%04X", tt.data, got, tt.want)
			}
		})
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	data := make([]byte, ChecksumOffset)
	for i := range data {
		data[i] = byte(i * 7)
	}

	first := Checksum(data)
	for i := 0; i < 10; i++ {
		if got := Checksum(data); got != first {
			t.Fatalf("Checksum not deterministic: 0x%04X vs 0x%04X", got, first)
		}
	}
}
