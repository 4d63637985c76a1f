// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"fmt"

	"github.com/kevana/klvgen/pkg/misb601"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Encode one packet and print it field by field",
	Long: `Encode a single MISB 601.2 KLV packet from the telemetry flags and
print an annotated hex dump alongside the decoded field values.

Useful for inspecting the exact wire layout without sending anything.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	addTelemetryFlags(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	record, err := buildRecord()
	if err != nil {
		return err
	}

	clock := misb601.SystemClock{}
	record.SetTimestamp(clock.NowMicros())

	buf := misb601.EncodePacket(record)

	fmt.Println(misb601.FormatHexDump(buf))

	packet, err := misb601.DecodePacket(buf)
	if err != nil {
		return fmt.Errorf("encoded packet failed to decode: %v", err)
	}

	fmt.Println(misb601.FormatPacket(packet))
	return nil
}
