// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Destination / listen endpoint flags
	address string
	port    int

	// Serial output flags
	serialPort string
	baudRate   int

	// WebSocket output flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "klvgen",
	Short: "MISB 601.2 KLV metadata generator",
	Long: `klvgen - Generate, stream, and analyze MISB 601.2 KLV metadata packets.

Each packet is a fixed 78-byte UAS LDS message carrying a microsecond
timestamp, mission ID, platform designation, sensor position, version, and
checksum, sent as UDP datagrams at a configurable rate.

Output modes for send/replay:
  UDP:       default, --address/--port select the destination
  Serial:    --serial-port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the KLVGEN_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell
history.`,
	Version: "1.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "127.0.0.1", "Destination (or listen) IP address")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 9000, "Destination (or listen) UDP port")

	rootCmd.PersistentFlags().StringVar(&serialPort, "serial-port", "", "Send over a serial port instead of UDP")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "Send to a WebSocket bridge (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
