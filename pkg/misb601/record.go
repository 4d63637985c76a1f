// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "strings"

// TelemetryRecord holds one set of telemetry values in encoded form:
// position codes produced by the mappers and identifiers padded to their
// fixed field widths. A record is owned by a single sender loop, which
// refreshes the timestamp before each encode.
type TelemetryRecord struct {
	timestamp uint64 // microseconds since the Unix epoch
	missionID [LenMissionID]byte
	platform  [LenPlatform]byte
	latCode   int32
	lonCode   int32
	altCode   uint16
}

// NewTelemetryRecord builds a record from real-world units. Position values
// are validated against their MISB 601.2 domains and mapped to fixed-point
// codes. Identifiers longer than 12 bytes are truncated; shorter ones are
// zero-padded, so no stale bytes can reach the wire.
func NewTelemetryRecord(missionID, platform string, latDeg, lonDeg, altMeters float64) (*TelemetryRecord, error) {
	latCode, err := MapLatitude(latDeg)
	if err != nil {
		return nil, err
	}
	lonCode, err := MapLongitude(lonDeg)
	if err != nil {
		return nil, err
	}
	altCode, err := MapAltitude(altMeters)
	if err != nil {
		return nil, err
	}

	r := &TelemetryRecord{
		latCode: latCode,
		lonCode: lonCode,
		altCode: altCode,
	}
	copy(r.missionID[:], missionID)
	copy(r.platform[:], platform)
	return r, nil
}

// SetTimestamp sets the packet timestamp in microseconds since the Unix
// epoch.
func (r *TelemetryRecord) SetTimestamp(micros uint64) {
	r.timestamp = micros
}

// Timestamp returns the record's timestamp in microseconds
func (r *TelemetryRecord) Timestamp() uint64 {
	return r.timestamp
}

// MissionID returns the mission identifier with field padding stripped
func (r *TelemetryRecord) MissionID() string {
	return strings.TrimRight(string(r.missionID[:]), "\x00")
}

// Platform returns the platform designation with field padding stripped
func (r *TelemetryRecord) Platform() string {
	return strings.TrimRight(string(r.platform[:]), "\x00")
}

// LatitudeCode returns the fixed-point latitude code
func (r *TelemetryRecord) LatitudeCode() int32 {
	return r.latCode
}

// LongitudeCode returns the fixed-point longitude code
func (r *TelemetryRecord) LongitudeCode() int32 {
	return r.lonCode
}

// AltitudeCode returns the fixed-point altitude code
func (r *TelemetryRecord) AltitudeCode() uint16 {
	return r.altCode
}
