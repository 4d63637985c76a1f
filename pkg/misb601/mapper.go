// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package misb601

import "fmt"

// mapValue performs the MISB 601.2 linear scaling of a value from an input
// range onto an output range. The result is truncated toward zero, not
// rounded; the truncation is part of the wire format's reproducible
// quantization policy.
func mapValue(val, inStart, inEnd, outStart, outEnd float64) int32 {
	return int32(outStart + ((outEnd-outStart)/(inEnd-inStart))*(val-inStart))
}

// MapLatitude maps degrees in [-90, 90] onto the signed 32-bit code range
// ±(2^31 - 1). Out-of-domain input is rejected rather than silently
// producing a misleading code.
func MapLatitude(deg float64) (int32, error) {
	if deg < LatitudeMin || deg > LatitudeMax {
		return 0, fmt.Errorf("latitude %v out of range [%v, %v]", deg, LatitudeMin, LatitudeMax)
	}
	return mapValue(deg, LatitudeMin, LatitudeMax, CoordCodeMin, CoordCodeMax), nil
}

// MapLongitude maps degrees in [-180, 180] onto ±(2^31 - 1).
func MapLongitude(deg float64) (int32, error) {
	if deg < LongitudeMin || deg > LongitudeMax {
		return 0, fmt.Errorf("longitude %v out of range [%v, %v]", deg, LongitudeMin, LongitudeMax)
	}
	return mapValue(deg, LongitudeMin, LongitudeMax, CoordCodeMin, CoordCodeMax), nil
}

// MapAltitude maps meters in [-900, 19000] onto the unsigned 16-bit code
// range [0, 65535]. The input is truncated to whole meters before mapping.
func MapAltitude(meters float64) (uint16, error) {
	if meters < AltitudeMin || meters > AltitudeMax {
		return 0, fmt.Errorf("altitude %v out of range [%v, %v]", meters, AltitudeMin, AltitudeMax)
	}
	whole := float64(int(meters))
	return uint16(mapValue(whole, AltitudeMin, AltitudeMax, 0, AltitudeCodeMax)), nil
}

// UnmapLatitude recovers degrees from a latitude code. The error sentinel
// decodes to the value it would nominally represent; callers detect it via
// the validator.
func UnmapLatitude(code int32) float64 {
	return LatitudeMin + ((LatitudeMax-LatitudeMin)/(CoordCodeMax-CoordCodeMin))*(float64(code)-CoordCodeMin)
}

// UnmapLongitude recovers degrees from a longitude code.
func UnmapLongitude(code int32) float64 {
	return LongitudeMin + ((LongitudeMax-LongitudeMin)/(CoordCodeMax-CoordCodeMin))*(float64(code)-CoordCodeMin)
}

// UnmapAltitude recovers meters from an altitude code.
func UnmapAltitude(code uint16) float64 {
	return AltitudeMin + ((AltitudeMax-AltitudeMin)/AltitudeCodeMax)*float64(code)
}
