// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist
//
// klvgen - MISB 601.2 KLV Metadata Generator
//
// A CLI tool for generating, streaming, and inspecting MISB Standard
// 601.2 UAS Local Data Set telemetry packets.

package main

import (
	"os"

	"github.com/kevana/klvgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
