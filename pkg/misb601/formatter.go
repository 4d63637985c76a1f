// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"fmt"
	"strings"
)

// FormatPacket formats a decoded packet into a human-readable string
func FormatPacket(p *Packet) string {
	received := p.receivedAt.Format("15:04:05.000")

	result := fmt.Sprintf("[%s] UAS LDS v0x%02X checksum=0x%04X\n", received, p.version, p.checksum)
	result += fmt.Sprintf("  Timestamp: %s (%d us)\n", p.Time().Format("2006-01-02 15:04:05.000000 UTC"), p.timestamp)
	result += fmt.Sprintf("  Mission:   %q\n", p.MissionID())
	result += fmt.Sprintf("  Platform:  %q\n", p.Platform())
	result += fmt.Sprintf("  Latitude:  %.6f deg (code %d)\n", p.Latitude(), p.latCode)
	result += fmt.Sprintf("  Longitude: %.6f deg (code %d)\n", p.Longitude(), p.lonCode)
	result += fmt.Sprintf("  Altitude:  %.1f m (code %d)\n", p.Altitude(), p.altCode)

	return result
}

// FormatFieldName returns the human-readable name for a MISB 601.2 tag
func FormatFieldName(tag byte) string {
	switch tag {
	case TagChecksum:
		return "CHECKSUM"
	case TagUnixTime:
		return "UNIX_TIME_STAMP"
	case TagMissionID:
		return "MISSION_ID"
	case TagPlatform:
		return "PLATFORM_DESIGNATION"
	case TagLatitude:
		return "SENSOR_LATITUDE"
	case TagLongitude:
		return "SENSOR_LONGITUDE"
	case TagTrueAltitude:
		return "SENSOR_TRUE_ALTITUDE"
	case TagLDSVersion:
		return "UAS_LDS_VERSION"
	default:
		return "UNKNOWN"
	}
}

// hexDumpRow labels one contiguous field range of the encoded packet
type hexDumpRow struct {
	label string
	start int
	end   int // exclusive
}

var hexDumpRows = []hexDumpRow{
	{"universal key", offKey, offMsgLength},
	{"message length", offMsgLength, offUnixTimeHdr},
	{"timestamp", offUnixTimeHdr, offMissionHdr},
	{"mission id", offMissionHdr, offPlatformHdr},
	{"platform", offPlatformHdr, offLatitudeHdr},
	{"latitude", offLatitudeHdr, offLongitudeHdr},
	{"longitude", offLongitudeHdr, offAltitudeHdr},
	{"altitude", offAltitudeHdr, offVersionHdr},
	{"version", offVersionHdr, offChecksumHdr},
	{"checksum", offChecksumHdr, PacketLength},
}

// FormatHexDump renders an encoded packet as one hex row per field, in the
// layout order of the offset table. Buffers of the wrong size fall back to
// a plain 16-byte-wide dump.
func FormatHexDump(buf []byte) string {
	var s strings.Builder

	if len(buf) != PacketLength {
		for i, b := range buf {
			if i > 0 && i%16 == 0 {
				s.WriteString("\n")
			}
			fmt.Fprintf(&s, "%02X ", b)
		}
		s.WriteString("\n")
		return s.String()
	}

	for _, row := range hexDumpRows {
		fmt.Fprintf(&s, "%-16s [%2d:%2d] ", row.label, row.start, row.end)
		for _, b := range buf[row.start:row.end] {
			fmt.Fprintf(&s, "%02X ", b)
		}
		s.WriteString("\n")
	}
	return s.String()
}
