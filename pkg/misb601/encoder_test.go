// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// referenceRecord builds the record from the MISB 601.2 worked example:
// timestamp 0, mission "Mission 01", platform "Demo", 44.64423 N,
// 93.24013 W, 333 m.
func referenceRecord(t *testing.T) *TelemetryRecord {
	t.Helper()
	rec, err := NewTelemetryRecord("Mission 01", "Demo", 44.64423, -93.24013, 333)
	if err != nil {
		t.Fatalf("NewTelemetryRecord failed: %v", err)
	}
	return rec
}

// goldenPacket is the expected encoding of referenceRecord
var goldenPacket = []byte{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01, // universal key
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
	0x3D,       // message length
	0x02, 0x08, // timestamp
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x03, 0x0C, // mission id
	0x4D, 0x69, 0x73, 0x73, 0x69, 0x6F, 0x6E, 0x20, 0x30, 0x31, 0x00, 0x00,
	0x0A, 0x0C, // platform
	0x44, 0x65, 0x6D, 0x6F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x0D, 0x04, // latitude
	0x3F, 0x7E, 0x77, 0xD4,
	0x0E, 0x04, // longitude
	0xBD, 0xB2, 0x27, 0x00,
	0x0F, 0x02, // altitude
	0x0F, 0xDC,
	0x41, 0x01, // version
	0x02,
	0x01, 0x02, // checksum
	0x03, 0xEF,
}

func TestEncodePacket_Golden(t *testing.T) {
	rec := referenceRecord(t)

	buf := EncodePacket(rec)
	if len(buf) != PacketLength {
		t.Fatalf("encoded length = %d, want %d", len(buf), PacketLength)
	}
	if !bytes.Equal(buf, goldenPacket) {
		for i := range buf {
			if buf[i] != goldenPacket[i] {
				t.Errorf("byte %d = 0x%02X, want 0x%02X", i, buf[i], goldenPacket[i])
			}
		}
		t.Fatalf("encoded packet differs from golden bytes")
	}
}

func TestEncodePacket_Layout(t *testing.T) {
	rec := referenceRecord(t)
	buf := EncodePacket(rec)

	if !bytes.Equal(buf[0:16], UASLDSKey[:]) {
		t.Errorf("bytes 0-15 should be the universal key, got % X", buf[0:16])
	}
	if buf[16] != MessageLength {
		t.Errorf("byte 16 = 0x%02X, want 0x%02X", buf[16], byte(MessageLength))
	}
	if buf[73] != LDSVersion {
		t.Errorf("byte 73 = 0x%02X, want 0x%02X", buf[73], byte(LDSVersion))
	}

	want := Checksum(buf[:ChecksumOffset])
	got := binary.BigEndian.Uint16(buf[ChecksumOffset:])
	if got != want {
		t.Errorf("checksum field = 0x%04X, want 0x%04X", got, want)
	}
}

func TestEncodePacket_TimestampBigEndian(t *testing.T) {
	rec := referenceRecord(t)
	rec.SetTimestamp(0x0102030405060708)

	buf := EncodePacket(rec)
	if !bytes.Equal(buf[19:27], []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}) {
		t.Errorf("timestamp bytes = % X, want 01..08", buf[19:27])
	}
}

func TestEncodePacket_Idempotent(t *testing.T) {
	rec := referenceRecord(t)
	rec.SetTimestamp(1724884215123456)

	first := EncodePacket(rec)
	second := EncodePacket(rec)
	if !bytes.Equal(first, second) {
		t.Error("re-encoding an unchanged record must be byte-for-byte identical")
	}
}

func TestEncodePacket_IdentifierPadding(t *testing.T) {
	tests := []struct {
		name    string
		mission string
		want    []byte
	}{
		{"short id zero padded", "A", []byte{'A', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"exactly twelve", "TwelveChars!", []byte("TwelveChars!")},
		{"long id truncated", "ThisNameIsFarTooLong", []byte("ThisNameIsFa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewTelemetryRecord(tt.mission, "Demo", 0, 0, 0)
			if err != nil {
				t.Fatalf("NewTelemetryRecord failed: %v", err)
			}
			buf := EncodePacket(rec)
			if !bytes.Equal(buf[29:41], tt.want) {
				t.Errorf("mission field = % X, want % X", buf[29:41], tt.want)
			}
		})
	}
}
