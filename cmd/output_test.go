// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"strings"
	"testing"
)

func TestOpenWebSocketOutputRejectsBadScheme(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"http scheme", "http://example.com/stream"},
		{"https scheme", "https://example.com/stream"},
		{"no scheme", "example.com/stream"},
		{"ftp scheme", "ftp://example.com/stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := OpenWebSocketOutput(tt.url, "", "", false)
			if err == nil {
				out.Close()
				t.Fatalf("expected scheme error for %q", tt.url)
			}
			if !strings.Contains(err.Error(), "scheme") {
				t.Errorf("error should name the scheme problem, got %q", err.Error())
			}
		})
	}
}

func TestBuildRecordRejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		alt  float64
	}{
		{"latitude too high", 90.1, 0, 0},
		{"latitude too low", -90.1, 0, 0},
		{"longitude too high", 0, 180.5, 0},
		{"longitude too low", 0, -180.5, 0},
		{"altitude too high", 0, 0, 19001},
		{"altitude too low", 0, 0, -901},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missionID = "Mission 01"
			platformName = "Demo"
			latitude = tt.lat
			longitude = tt.lon
			altitude = tt.alt

			if _, err := buildRecord(); err == nil {
				t.Fatalf("expected out of range error for lat=%v lon=%v alt=%v", tt.lat, tt.lon, tt.alt)
			}
		})
	}
}

func TestBuildRecordDefaults(t *testing.T) {
	missionID = "Mission 01"
	platformName = "Demo"
	latitude = 44.64423
	longitude = -93.24013
	altitude = 333

	record, err := buildRecord()
	if err != nil {
		t.Fatalf("buildRecord failed: %v", err)
	}

	if record.MissionID() != "Mission 01" {
		t.Errorf("mission ID = %q, want %q", record.MissionID(), "Mission 01")
	}
	if record.Platform() != "Demo" {
		t.Errorf("platform = %q, want %q", record.Platform(), "Demo")
	}
	if record.AltitudeCode() != 4060 {
		t.Errorf("altitude code = %d, want 4060", record.AltitudeCode())
	}
}
