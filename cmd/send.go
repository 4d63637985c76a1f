// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kevana/klvgen/pkg/misb601"
	"github.com/spf13/cobra"
)

// MaxSendRate is the highest supported packet rate in packets per second
const MaxSendRate = 1000000

var (
	sendRate  float64
	sendCount int

	missionID    string
	platformName string
	latitude     float64
	longitude    float64
	altitude     float64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Stream KLV metadata packets at a fixed rate",
	Long: `Continuously encode and send MISB 601.2 KLV packets.

The timestamp field is refreshed from the system clock before every packet;
all other fields are fixed for the lifetime of the stream. Transmission is
fire-and-forget: a failed send is logged and the stream continues.

The stream runs until interrupted (Ctrl+C) or until --count packets have
been sent. The socket is released on every exit path.`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().Float64VarP(&sendRate, "rate", "r", 1, "Packets per second")
	sendCmd.Flags().IntVarP(&sendCount, "count", "c", 0, "Stop after this many packets (0 = run until interrupted)")
	addTelemetryFlags(sendCmd)
}

// addTelemetryFlags registers the telemetry field flags shared by the
// packet-producing commands
func addTelemetryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&missionID, "mission-id", "m", "Mission 01", "Mission ID, limited to 12 ASCII characters")
	cmd.Flags().StringVarP(&platformName, "platform", "n", "Demo", "Platform name, limited to 12 ASCII characters")
	cmd.Flags().Float64VarP(&latitude, "latitude", "t", 44.64423, "Sensor latitude in degrees [-90, 90]")
	cmd.Flags().Float64VarP(&longitude, "longitude", "g", -93.24013, "Sensor longitude in degrees [-180, 180]")
	cmd.Flags().Float64VarP(&altitude, "altitude", "e", 333, "Sensor true altitude in meters [-900, 19000]")
}

// buildRecord validates the telemetry flags and builds the record. Domain
// violations are configuration errors: reported once, before any socket
// work.
func buildRecord() (*misb601.TelemetryRecord, error) {
	if latitude < misb601.LatitudeMin || latitude > misb601.LatitudeMax {
		return nil, fmt.Errorf("latitude %v out of range (%v, %v)", latitude, misb601.LatitudeMin, misb601.LatitudeMax)
	}
	if longitude < misb601.LongitudeMin || longitude > misb601.LongitudeMax {
		return nil, fmt.Errorf("longitude %v out of range (%v, %v)", longitude, misb601.LongitudeMin, misb601.LongitudeMax)
	}
	if altitude < misb601.AltitudeMin || altitude > misb601.AltitudeMax {
		return nil, fmt.Errorf("altitude %v out of range (%v, %v)", altitude, misb601.AltitudeMin, misb601.AltitudeMax)
	}

	if len(missionID) > misb601.IdentifierMaxSize {
		fmt.Printf("WARNING: Mission ID truncated to %d characters\n", misb601.IdentifierMaxSize)
	}
	if len(platformName) > misb601.IdentifierMaxSize {
		fmt.Printf("WARNING: Platform truncated to %d characters\n", misb601.IdentifierMaxSize)
	}

	return misb601.NewTelemetryRecord(missionID, platformName, latitude, longitude, altitude)
}

func runSend(cmd *cobra.Command, args []string) error {
	if sendRate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", sendRate)
	}
	if sendRate > MaxSendRate {
		return fmt.Errorf("rates above %d packets per second are not supported", MaxSendRate)
	}

	rec, err := buildRecord()
	if err != nil {
		return err
	}

	out, outInfo, err := OpenOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	fmt.Printf("klvgen - MISB 601.2 KLV generator\n")
	fmt.Printf("Output: %s\n", outInfo)
	fmt.Printf("Rate: %g packets/sec\n", sendRate)
	fmt.Printf("Mission: %q  Platform: %q\n", rec.MissionID(), rec.Platform())
	fmt.Printf("Press Ctrl+C to stop\n\n")

	clock := misb601.SystemClock{}
	sent := 0

	sendOne := func() {
		rec.SetTimestamp(clock.NowMicros())
		if _, err := out.Write(misb601.EncodePacket(rec)); err != nil {
			log.Printf("send error: %v", err)
			return
		}
		sent++
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) / sendRate))
	defer ticker.Stop()

	sendOne()
	for sendCount == 0 || sent < sendCount {
		select {
		case <-ctx.Done():
			fmt.Printf("\nInterrupted, sent %d packets\n", sent)
			return nil
		case <-ticker.C:
			sendOne()
		}
	}

	fmt.Printf("Sent %d packets\n", sent)
	return nil
}
