// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "fmt"

// AnomalyType represents different types of packet anomalies
type AnomalyType int

const (
	AnomalyErrorSentinel AnomalyType = iota
	AnomalyVersionMismatch
	AnomalyNonPrintableID
	AnomalyChecksumError
	AnomalyDecodeError
)

// ValidationError represents a packet validation failure
type ValidationError struct {
	Type    AnomalyType
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// ValidatePacket inspects a decoded packet for anomalies that a checksum
// cannot catch: error-indicator coordinates, an unexpected LDS version, and
// non-printable bytes inside the identifier fields. Returns an empty slice
// for a clean packet.
func ValidatePacket(p *Packet) []ValidationError {
	errors := []ValidationError{}

	if p.latCode == CoordErrSentinel {
		errors = append(errors, ValidationError{
			Type:    AnomalyErrorSentinel,
			Message: "latitude carries the MISB error indicator",
			Details: map[string]interface{}{"code": p.latCode},
		})
	}
	if p.lonCode == CoordErrSentinel {
		errors = append(errors, ValidationError{
			Type:    AnomalyErrorSentinel,
			Message: "longitude carries the MISB error indicator",
			Details: map[string]interface{}{"code": p.lonCode},
		})
	}

	if p.version != LDSVersion {
		errors = append(errors, ValidationError{
			Type:    AnomalyVersionMismatch,
			Message: fmt.Sprintf("unexpected LDS version 0x%02X (expected 0x%02X)", p.version, LDSVersion),
			Details: map[string]interface{}{"version": p.version, "expected": byte(LDSVersion)},
		})
	}

	errors = append(errors, validateIdentifier("mission_id", p.missionID[:])...)
	errors = append(errors, validateIdentifier("platform", p.platform[:])...)

	return errors
}

// validateIdentifier checks that an ASCII field holds printable characters
// followed only by zero padding
func validateIdentifier(name string, field []byte) []ValidationError {
	padding := false
	for i, b := range field {
		if b == 0 {
			padding = true
			continue
		}
		if padding || b < 0x20 || b > 0x7E {
			return []ValidationError{{
				Type:    AnomalyNonPrintableID,
				Message: fmt.Sprintf("%s contains non-printable byte 0x%02X at offset %d", name, b, i),
				Details: map[string]interface{}{"field": name, "byte": b, "offset": i},
			}}
		}
	}
	return nil
}
