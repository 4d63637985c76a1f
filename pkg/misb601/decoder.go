// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// DecodePacket parses a received datagram as a MISB 601.2 packet. The
// buffer must be exactly 78 bytes, start with the UAS LDS universal key,
// carry the fixed message length byte, and have a valid checksum. Each
// datagram holds one complete packet, so no byte-stream state machine is
// involved.
func DecodePacket(buf []byte) (*Packet, error) {
	if len(buf) != PacketLength {
		return nil, fmt.Errorf("invalid packet length: %d (expected %d)", len(buf), PacketLength)
	}
	if !bytes.Equal(buf[offKey:offKey+16], UASLDSKey[:]) {
		return nil, fmt.Errorf("universal key mismatch")
	}
	if buf[offMsgLength] != MessageLength {
		return nil, fmt.Errorf("invalid message length byte: 0x%02X (expected 0x%02X)", buf[offMsgLength], MessageLength)
	}

	calculated := Checksum(buf[:ChecksumOffset])
	received := binary.BigEndian.Uint16(buf[offChecksum:])
	if received != calculated {
		return nil, fmt.Errorf("checksum mismatch: expected 0x%04X, got 0x%04X", calculated, received)
	}

	p := &Packet{
		timestamp:  binary.BigEndian.Uint64(buf[offUnixTime:]),
		latCode:    int32(binary.BigEndian.Uint32(buf[offLatitude:])),
		lonCode:    int32(binary.BigEndian.Uint32(buf[offLongitude:])),
		altCode:    binary.BigEndian.Uint16(buf[offAltitude:]),
		version:    buf[offVersion],
		checksum:   received,
		receivedAt: time.Now(),
	}
	copy(p.missionID[:], buf[offMission:offMission+LenMissionID])
	copy(p.platform[:], buf[offPlatform:offPlatform+LenPlatform])
	return p, nil
}
