// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"strings"
	"time"
)

// Packet represents a decoded MISB 601.2 metadata packet
type Packet struct {
	timestamp  uint64 // microseconds since the Unix epoch
	missionID  [LenMissionID]byte
	platform   [LenPlatform]byte
	latCode    int32
	lonCode    int32
	altCode    uint16
	version    byte
	checksum   uint16
	receivedAt time.Time
}

// Timestamp returns the embedded timestamp in microseconds
func (p *Packet) Timestamp() uint64 {
	return p.timestamp
}

// Time returns the embedded timestamp as wall-clock time
func (p *Packet) Time() time.Time {
	return time.UnixMicro(int64(p.timestamp)).UTC()
}

// MissionID returns the mission identifier with field padding stripped
func (p *Packet) MissionID() string {
	return strings.TrimRight(string(p.missionID[:]), "\x00")
}

// Platform returns the platform designation with field padding stripped
func (p *Packet) Platform() string {
	return strings.TrimRight(string(p.platform[:]), "\x00")
}

// LatitudeCode returns the raw fixed-point latitude code
func (p *Packet) LatitudeCode() int32 {
	return p.latCode
}

// LongitudeCode returns the raw fixed-point longitude code
func (p *Packet) LongitudeCode() int32 {
	return p.lonCode
}

// AltitudeCode returns the raw fixed-point altitude code
func (p *Packet) AltitudeCode() uint16 {
	return p.altCode
}

// Latitude returns the sensor latitude in degrees
func (p *Packet) Latitude() float64 {
	return UnmapLatitude(p.latCode)
}

// Longitude returns the sensor longitude in degrees
func (p *Packet) Longitude() float64 {
	return UnmapLongitude(p.lonCode)
}

// Altitude returns the sensor true altitude in meters
func (p *Packet) Altitude() float64 {
	return UnmapAltitude(p.altCode)
}

// Version returns the UAS LDS version byte
func (p *Packet) Version() byte {
	return p.version
}

// Checksum returns the packet's checksum value
func (p *Packet) Checksum() uint16 {
	return p.checksum
}

// ReceivedAt returns the local decode timestamp
func (p *Packet) ReceivedAt() time.Time {
	return p.receivedAt
}
