// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"errors"
	"strings"
	"testing"
)

func TestStatisticsUpdate(t *testing.T) {
	stats := NewStatistics()

	packet, err := DecodePacket(goldenPacket)
	if err != nil {
		t.Fatalf("DecodePacket failed: %v", err)
	}

	// Valid packet
	stats.Update(packet, nil, nil)

	// Checksum failure is classified separately from other decode errors
	stats.Update(nil, errors.New("checksum mismatch: expected 0x03EF, got 0x0000"), nil)
	stats.Update(nil, errors.New("invalid packet length: got 12, want 78"), nil)

	// Anomalous packet with two findings
	stats.Update(packet, nil, []ValidationError{
		{Type: AnomalyErrorSentinel, Message: "latitude error sentinel"},
		{Type: AnomalyVersionMismatch, Message: "version mismatch"},
	})

	if stats.TotalPackets != 4 {
		t.Errorf("TotalPackets = %d, want 4", stats.TotalPackets)
	}
	if stats.ValidPackets != 1 {
		t.Errorf("ValidPackets = %d, want 1", stats.ValidPackets)
	}
	if stats.ChecksumErrors != 1 {
		t.Errorf("ChecksumErrors = %d, want 1", stats.ChecksumErrors)
	}
	if stats.DecodeErrors != 1 {
		t.Errorf("DecodeErrors = %d, want 1", stats.DecodeErrors)
	}
	if stats.AnomalousPackets != 1 {
		t.Errorf("AnomalousPackets = %d, want 1", stats.AnomalousPackets)
	}
	if stats.ErrorSentinels != 1 {
		t.Errorf("ErrorSentinels = %d, want 1", stats.ErrorSentinels)
	}
	if stats.VersionMismatch != 1 {
		t.Errorf("VersionMismatch = %d, want 1", stats.VersionMismatch)
	}
}

func TestStatisticsReset(t *testing.T) {
	stats := NewStatistics()
	stats.Update(nil, errors.New("checksum mismatch: expected 0x0001, got 0x0002"), nil)

	stats.Reset()

	if stats.TotalPackets != 0 || stats.ChecksumErrors != 0 {
		t.Errorf("counters after Reset: total=%d checksum=%d, want 0 0", stats.TotalPackets, stats.ChecksumErrors)
	}
}

func TestStatisticsString(t *testing.T) {
	stats := NewStatistics()

	packet, err := DecodePacket(goldenPacket)
	if err != nil {
		t.Fatalf("DecodePacket failed: %v", err)
	}
	stats.Update(packet, nil, nil)

	out := stats.String()
	if !strings.Contains(out, "Total Packets:") {
		t.Errorf("String() missing total packets line:\n%s", out)
	}
	if !strings.Contains(out, "1") {
		t.Errorf("String() should report the packet count:\n%s", out)
	}
}
