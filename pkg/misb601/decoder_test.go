// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"math"
	"strings"
	"testing"
)

func TestDecodePacket_RoundTrip(t *testing.T) {
	rec, err := NewTelemetryRecord("Mission 01", "Demo", 44.64423, -93.24013, 333)
	if err != nil {
		t.Fatalf("NewTelemetryRecord failed: %v", err)
	}
	rec.SetTimestamp(1724884215123456)

	p, err := DecodePacket(EncodePacket(rec))
	if err != nil {
		t.Fatalf("DecodePacket failed: %v", err)
	}

	if p.Timestamp() != 1724884215123456 {
		t.Errorf("timestamp = %d, want 1724884215123456", p.Timestamp())
	}
	if p.MissionID() != "Mission 01" {
		t.Errorf("mission = %q, want %q", p.MissionID(), "Mission 01")
	}
	if p.Platform() != "Demo" {
		t.Errorf("platform = %q, want %q", p.Platform(), "Demo")
	}
	if p.Version() != LDSVersion {
		t.Errorf("version = 0x%02X, want 0x%02X", p.Version(), byte(LDSVersion))
	}
	if math.Abs(p.Latitude()-44.64423) > 180.0/4294967294.0 {
		t.Errorf("latitude = %v, want 44.64423 within one step", p.Latitude())
	}
	if math.Abs(p.Longitude()-(-93.24013)) > 360.0/4294967294.0 {
		t.Errorf("longitude = %v, want -93.24013 within one step", p.Longitude())
	}
	// Altitude quantization is coarse: one step is ~0.3 m
	if math.Abs(p.Altitude()-333) > 19900.0/65535.0 {
		t.Errorf("altitude = %v, want 333 within one step", p.Altitude())
	}
}

func TestDecodePacket_Errors(t *testing.T) {
	rec, err := NewTelemetryRecord("Mission 01", "Demo", 0, 0, 0)
	if err != nil {
		t.Fatalf("NewTelemetryRecord failed: %v", err)
	}
	good := EncodePacket(rec)

	tests := []struct {
		name    string
		corrupt func([]byte) []byte
		wantErr string
	}{
		{
			"short buffer",
			func(b []byte) []byte { return b[:77] },
			"invalid packet length",
		},
		{
			"long buffer",
			func(b []byte) []byte { return append(b, 0x00) },
			"invalid packet length",
		},
		{
			"corrupt key",
			func(b []byte) []byte { b[0] = 0x07; return b },
			"universal key mismatch",
		},
		{
			"wrong message length byte",
			func(b []byte) []byte { b[16] = 0x3C; return b },
			"invalid message length byte",
		},
		{
			"flipped payload bit",
			func(b []byte) []byte { b[30] ^= 0x01; return b },
			"checksum mismatch",
		},
		{
			"corrupt checksum field",
			func(b []byte) []byte { b[77] ^= 0xFF; return b },
			"checksum mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, len(good))
			copy(buf, good)

			_, err := DecodePacket(tt.corrupt(buf))
			if err == nil {
				t.Fatal("DecodePacket should have failed")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
