// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kevana/klvgen/pkg/capture"
	"github.com/spf13/cobra"
)

var replayRate float64

var replayCmd = &cobra.Command{
	Use:   "replay <capture-file>",
	Short: "Re-send packets from a capture file",
	Long: `Replay a capture file recorded with 'listen --capture'.

By default packets are re-sent with their original inter-packet spacing,
reconstructed from the recorded receive timestamps. Pass --rate to replay
at a fixed rate instead.

Payloads are sent exactly as captured, including any that failed to decode
at record time.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replayRate, "rate", "r", 0, "Fixed replay rate in packets per second (0 = original timing)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if replayRate < 0 || replayRate > MaxSendRate {
		return fmt.Errorf("rate must be in (0, %d] packets per second", MaxSendRate)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture file: %v", err)
	}
	defer f.Close()

	out, target, err := OpenOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Printf("Replaying %s to %s\n", args[0], target)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := capture.NewReader(f)
	sent := 0
	var prevReceivedAt int64

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("capture file read failed after %d packets: %v", sent, err)
		}

		// Pace before each packet except the first
		if sent > 0 {
			var delay time.Duration
			if replayRate > 0 {
				delay = time.Duration(float64(time.Second) / replayRate)
			} else if rec.ReceivedAt > prevReceivedAt {
				delay = time.Duration(rec.ReceivedAt-prevReceivedAt) * time.Microsecond
			}

			if delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					fmt.Printf("\nInterrupted after %d packets\n", sent)
					return nil
				case <-timer.C:
				}
			}
		} else if ctx.Err() != nil {
			return nil
		}

		if _, err := out.Write(rec.Payload); err != nil {
			log.Printf("send failed: %v", err)
		}
		prevReceivedAt = rec.ReceivedAt
		sent++
	}

	fmt.Printf("Replayed %d packets\n", sent)
	return nil
}
