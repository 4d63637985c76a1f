// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

// Package capture reads and writes KLV capture files: a flat CBOR stream of
// received datagrams with their arrival times, suitable for later replay at
// the original pacing.
package capture

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Record is one captured datagram. Integer keys keep the per-packet
// overhead small next to the 78-byte payload.
type Record struct {
	ReceivedAt int64  `cbor:"1,keyasint"` // microseconds since the Unix epoch
	Payload    []byte `cbor:"2,keyasint"`
}

// Writer appends records to a capture stream
type Writer struct {
	enc *cbor.Encoder
}

// NewWriter creates a capture writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: cbor.NewEncoder(w)}
}

// Write appends one record to the stream
func (w *Writer) Write(rec Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode capture record: %w", err)
	}
	return nil
}

// Reader iterates over the records of a capture stream
type Reader struct {
	dec *cbor.Decoder
}

// NewReader creates a capture reader on top of r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// Next returns the next record, or io.EOF at the end of the stream
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("failed to decode capture record: %w", err)
	}
	return rec, nil
}
