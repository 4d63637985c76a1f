// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"fmt"
	"strings"
	"time"
)

// Statistics tracks packet statistics and error rates
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalPackets     uint64
	ValidPackets     uint64
	ChecksumErrors   uint64
	DecodeErrors     uint64
	ErrorSentinels   uint64
	VersionMismatch  uint64
	NonPrintableIDs  uint64
	AnomalousPackets uint64

	// Rates (calculated)
	PacketRate float64 // packets/sec
	ErrorRate  float64 // errors/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update updates statistics based on a packet and its errors
func (s *Statistics) Update(packet *Packet, decodeErr error, validationErrors []ValidationError) {
	s.TotalPackets++

	if decodeErr != nil {
		if strings.HasPrefix(decodeErr.Error(), "checksum mismatch") {
			s.ChecksumErrors++
		} else {
			s.DecodeErrors++
		}
		return
	}

	if len(validationErrors) > 0 {
		s.AnomalousPackets++
		for _, err := range validationErrors {
			switch err.Type {
			case AnomalyErrorSentinel:
				s.ErrorSentinels++
			case AnomalyVersionMismatch:
				s.VersionMismatch++
			case AnomalyNonPrintableID:
				s.NonPrintableIDs++
			}
		}
	} else {
		s.ValidPackets++
	}

	s.LastUpdateTime = time.Now()
}

// CalculateRates calculates packet and error rates
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.PacketRate = float64(s.TotalPackets) / elapsed
		errorCount := s.ChecksumErrors + s.DecodeErrors + s.AnomalousPackets
		s.ErrorRate = float64(errorCount) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	var validPercent, checksumPercent, decodePercent, anomalousPercent float64
	if s.TotalPackets > 0 {
		validPercent = float64(s.ValidPackets) * 100.0 / float64(s.TotalPackets)
		checksumPercent = float64(s.ChecksumErrors) * 100.0 / float64(s.TotalPackets)
		decodePercent = float64(s.DecodeErrors) * 100.0 / float64(s.TotalPackets)
		anomalousPercent = float64(s.AnomalousPackets) * 100.0 / float64(s.TotalPackets)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Packets:   %8d\n", s.TotalPackets)
	result += fmt.Sprintf("Valid Packets:   %8d (%.1f%%)\n", s.ValidPackets, validPercent)

	if s.ChecksumErrors > 0 {
		result += fmt.Sprintf("Checksum Errors: %8d (%.1f%%)\n", s.ChecksumErrors, checksumPercent)
	}
	if s.DecodeErrors > 0 {
		result += fmt.Sprintf("Decode Errors:   %8d (%.1f%%)\n", s.DecodeErrors, decodePercent)
	}
	if s.AnomalousPackets > 0 {
		result += fmt.Sprintf("Anomalous Pkts:  %8d (%.1f%%)\n", s.AnomalousPackets, anomalousPercent)
		if s.ErrorSentinels > 0 {
			result += fmt.Sprintf("  Error Sentinels:  %5d\n", s.ErrorSentinels)
		}
		if s.VersionMismatch > 0 {
			result += fmt.Sprintf("  Version Mismatch: %5d\n", s.VersionMismatch)
		}
		if s.NonPrintableIDs > 0 {
			result += fmt.Sprintf("  Bad Identifiers:  %5d\n", s.NonPrintableIDs)
		}
	}

	result += fmt.Sprintf("Packet Rate:     %8.1f pkts/sec\n", s.PacketRate)
	result += fmt.Sprintf("Error Rate:      %8.1f errors/sec\n", s.ErrorRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	now := time.Now()
	s.StartTime = now
	s.LastUpdateTime = now
	s.TotalPackets = 0
	s.ValidPackets = 0
	s.ChecksumErrors = 0
	s.DecodeErrors = 0
	s.ErrorSentinels = 0
	s.VersionMismatch = 0
	s.NonPrintableIDs = 0
	s.AnomalousPackets = 0
	s.PacketRate = 0
	s.ErrorRate = 0
}
