// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kevana/klvgen/pkg/capture"
	"github.com/kevana/klvgen/pkg/misb601"
	"github.com/spf13/cobra"
)

var (
	listenStatsInterval int
	listenShowAll       bool
	captureFile         string
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive and decode a KLV packet stream",
	Long: `Listen for MISB 601.2 KLV packets on a UDP port and decode them.

Each datagram is parsed, checksum-verified, validated for anomalies
(error-indicator coordinates, version mismatches, malformed identifiers),
and printed in human-readable form. Statistics are printed at a
configurable interval.

With --capture, every received datagram is also appended to a capture file
(raw payload plus arrival time) for later replay with 'klvgen replay'.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().IntVar(&listenStatsInterval, "stats-interval", 10, "Statistics update interval (seconds)")
	listenCmd.Flags().BoolVar(&listenShowAll, "show-all", true, "Print every valid packet (false for errors only)")
	listenCmd.Flags().StringVar(&captureFile, "capture", "", "Append received packets to a capture file")
}

func runListen(cmd *cobra.Command, args []string) error {
	conn, err := net.ListenPacket("udp", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return fmt.Errorf("failed to bind %s:%d: %v", address, port, err)
	}
	defer conn.Close()

	var capWriter *capture.Writer
	if captureFile != "" {
		f, err := os.OpenFile(captureFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open capture file: %v", err)
		}
		defer f.Close()
		capWriter = capture.NewWriter(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	fmt.Printf("klvgen - KLV Stream Monitor\n")
	fmt.Printf("Listening: %s\n", conn.LocalAddr())
	if captureFile != "" {
		fmt.Printf("Capture: %s\n", captureFile)
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	stats := misb601.NewStatistics()

	// Reader goroutine so the main loop can also service the stats
	// ticker and shutdown signal
	type datagram struct {
		data       []byte
		receivedAt time.Time
	}
	datagrams := make(chan datagram, 64)
	readErr := make(chan error, 1)

	go func() {
		buf := make([]byte, 512)
		for {
			n, _, err := conn.ReadFrom(buf)
			if err != nil {
				readErr <- err
				return
			}
			data := make([]byte, n)
			copy(data, buf[:n])
			datagrams <- datagram{data: data, receivedAt: time.Now()}
		}
	}()

	statsTicker := time.NewTicker(time.Duration(listenStatsInterval) * time.Second)
	defer statsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			fmt.Print(stats.String())
			return nil

		case err := <-readErr:
			// The deferred Close unblocks the reader during shutdown;
			// that error is not a failure.
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read error: %v", err)

		case dg := <-datagrams:
			if capWriter != nil {
				rec := capture.Record{
					ReceivedAt: dg.receivedAt.UnixMicro(),
					Payload:    dg.data,
				}
				if err := capWriter.Write(rec); err != nil {
					log.Printf("capture error: %v", err)
				}
			}

			packet, decodeErr := misb601.DecodePacket(dg.data)
			if decodeErr != nil {
				stats.Update(nil, decodeErr, nil)
				fmt.Printf("[ERROR] %v\n", decodeErr)
				continue
			}

			validationErrors := misb601.ValidatePacket(packet)
			stats.Update(packet, nil, validationErrors)

			if len(validationErrors) > 0 {
				for _, verr := range validationErrors {
					fmt.Printf("[ANOMALY] %s\n", verr.Message)
				}
				fmt.Print(misb601.FormatPacket(packet))
			} else if listenShowAll {
				fmt.Print(misb601.FormatPacket(packet))
			}

		case <-statsTicker.C:
			fmt.Println()
			fmt.Print(stats.String())
			fmt.Println()
		}
	}
}
