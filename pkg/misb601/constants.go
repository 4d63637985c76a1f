// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

// Package misb601 implements the MISB 601.2 UAS LDS metadata packet format.
//
// The packet is a fixed-layout KLV (Key-Length-Value) message: a 16-byte
// universal key, a one-byte BER short form message length, and a fixed
// sequence of tagged telemetry fields (timestamp, mission ID, platform
// designation, sensor position, version, checksum). Every encoded packet is
// exactly 78 bytes and carries a 16-bit running checksum over the preceding
// 76 bytes.
package misb601

// UASLDSKey is the 16-byte universal key identifying the UAS Local Data Set
// per MISB 601.2.
var UASLDSKey = [16]byte{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
}

// Packet geometry
const (
	PacketLength   = 78   // total encoded size in bytes
	MessageLength  = 0x3D // value of the BER length byte after the key (61)
	ChecksumOffset = 76   // checksum value position; checksum covers [0,76)
)

// Field tags from MISB 601.2. Each tag is paired with a one-byte BER short
// form length on the wire.
const (
	TagChecksum     = 0x01
	TagUnixTime     = 0x02
	TagMissionID    = 0x03
	TagPlatform     = 0x0A
	TagLatitude     = 0x0D
	TagLongitude    = 0x0E
	TagTrueAltitude = 0x0F
	TagLDSVersion   = 0x41
)

// Field value lengths
const (
	LenChecksum     = 2
	LenUnixTime     = 8
	LenMissionID    = 12
	LenPlatform     = 12
	LenLatitude     = 4
	LenLongitude    = 4
	LenTrueAltitude = 2
	LenLDSVersion   = 1
)

// Byte offsets of every field in the encoded packet. Tag+length headers
// occupy the two bytes preceding each value offset.
const (
	offKey          = 0
	offMsgLength    = 16
	offUnixTimeHdr  = 17
	offUnixTime     = 19
	offMissionHdr   = 27
	offMission      = 29
	offPlatformHdr  = 41
	offPlatform     = 43
	offLatitudeHdr  = 55
	offLatitude     = 57
	offLongitudeHdr = 61
	offLongitude    = 63
	offAltitudeHdr  = 67
	offAltitude     = 69
	offVersionHdr   = 71
	offVersion      = 73
	offChecksumHdr  = 74
	offChecksum     = ChecksumOffset
)

// LDSVersion is the UAS LDS version byte, 0x02 for MISB 601.2.
const LDSVersion = 0x02

// Input domains and fixed-point code ranges
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	AltitudeMin  = -900.0
	AltitudeMax  = 19000.0

	// Latitude and longitude map onto ±(2^31 - 1). The most negative
	// int32 (-2^31) is reserved by MISB 601.2 as the error indicator and
	// is never produced by a valid mapping.
	CoordCodeMax      = 2147483647
	CoordCodeMin      = -2147483647
	CoordErrSentinel  = -2147483648
	AltitudeCodeMax   = 65535
	IdentifierMaxSize = 12
)
