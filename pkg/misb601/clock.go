// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "time"

// Clock supplies the wall-clock timestamp embedded in packets. Wall-clock
// semantics are deliberate: receivers correlate streams against absolute
// time, so a monotonic source would be wrong here.
type Clock interface {
	NowMicros() uint64
}

// SystemClock reads the operating system's real-time clock
type SystemClock struct{}

// NowMicros returns the current time in microseconds since the Unix epoch
func (SystemClock) NowMicros() uint64 {
	return uint64(time.Now().UnixMicro())
}
