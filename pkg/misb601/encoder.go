// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "encoding/binary"

// EncodePacket encodes a telemetry record into a complete 78-byte MISB
// 601.2 packet. All fields are written every time, at fixed offsets; the
// checksum is computed over the first 76 bytes once every other field is in
// place, and written last. Encoding the same record twice yields identical
// buffers.
func EncodePacket(rec *TelemetryRecord) []byte {
	buf := make([]byte, PacketLength)

	copy(buf[offKey:], UASLDSKey[:])
	buf[offMsgLength] = MessageLength

	putHeader(buf, offUnixTimeHdr, TagUnixTime, LenUnixTime)
	binary.NativeEndian.PutUint64(buf[offUnixTime:], ToNetwork64(rec.timestamp))

	putHeader(buf, offMissionHdr, TagMissionID, LenMissionID)
	copy(buf[offMission:], rec.missionID[:])

	putHeader(buf, offPlatformHdr, TagPlatform, LenPlatform)
	copy(buf[offPlatform:], rec.platform[:])

	putHeader(buf, offLatitudeHdr, TagLatitude, LenLatitude)
	binary.NativeEndian.PutUint32(buf[offLatitude:], ToNetwork32(uint32(rec.latCode)))

	putHeader(buf, offLongitudeHdr, TagLongitude, LenLongitude)
	binary.NativeEndian.PutUint32(buf[offLongitude:], ToNetwork32(uint32(rec.lonCode)))

	putHeader(buf, offAltitudeHdr, TagTrueAltitude, LenTrueAltitude)
	binary.NativeEndian.PutUint16(buf[offAltitude:], ToNetwork16(rec.altCode))

	putHeader(buf, offVersionHdr, TagLDSVersion, LenLDSVersion)
	buf[offVersion] = LDSVersion

	putHeader(buf, offChecksumHdr, TagChecksum, LenChecksum)
	binary.NativeEndian.PutUint16(buf[offChecksum:], ToNetwork16(Checksum(buf[:ChecksumOffset])))

	return buf
}

// putHeader writes a tag and BER short form length pair at off
func putHeader(buf []byte, off int, tag, length byte) {
	buf[off] = tag
	buf[off+1] = length
}
