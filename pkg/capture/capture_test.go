// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package capture

import (
	"bytes"
	"io"
	"testing"
)

func TestCapture_RoundTrip(t *testing.T) {
	records := []Record{
		{ReceivedAt: 1724884215000000, Payload: bytes.Repeat([]byte{0xAA}, 78)},
		{ReceivedAt: 1724884215100000, Payload: bytes.Repeat([]byte{0xBB}, 78)},
		{ReceivedAt: 1724884215200000, Payload: []byte{0x06, 0x0E, 0x2B, 0x34}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	r := NewReader(&buf)
	for i, want := range records {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next for record %d failed: %v", i, err)
		}
		if got.ReceivedAt != want.ReceivedAt {
			t.Errorf("record %d ReceivedAt = %d, want %d", i, got.ReceivedAt, want.ReceivedAt)
		}
		if !bytes.Equal(got.Payload, want.Payload) {
			t.Errorf("record %d payload mismatch", i)
		}
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last record, got %v", err)
	}
}

func TestReader_Garbage(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF}))
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a decode error for garbage input, got %v", err)
	}
}
