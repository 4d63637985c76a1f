// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kevana/klvgen/pkg/misb601"
	"github.com/spf13/cobra"
)

var watchShowAll bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard for a KLV packet stream",
	Long: `Monitor a MISB 601.2 KLV stream in a terminal UI.

Shows the latest decoded telemetry (position, identifiers, timestamp),
running statistics, and a log of recent anomalies. By default only
anomalous packets are logged; use --show-all to log every packet.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchShowAll, "show-all", false, "Log all packets (not just anomalies)")
}

// Event log entry
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// TUI model
type watchModel struct {
	listenAddr    string
	showAll       bool
	stats         *misb601.Statistics
	spin          spinner.Model
	eventLog      []eventLogEntry
	maxLogEntries int
	synchronized  bool
	lastPacket    *misb601.Packet
	width         int
	height        int
	quitting      bool
}

// Messages
type tickMsg time.Time
type packetMsg struct {
	packet           *misb601.Packet
	decodeErr        error
	validationErrors []misb601.ValidationError
}

func initialWatchModel(listenAddr string, showAll bool) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return watchModel{
		listenAddr:    listenAddr,
		showAll:       showAll,
		stats:         misb601.NewStatistics(),
		spin:          sp,
		eventLog:      make([]eventLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.spin.Tick,
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.stats.CalculateRates()
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.synchronized {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case packetMsg:
		if msg.decodeErr != nil {
			m.stats.Update(nil, msg.decodeErr, nil)
			m.addLogEntry(fmt.Sprintf("DECODE ERROR: %v", msg.decodeErr), true)
		} else if msg.packet != nil {
			if !m.synchronized {
				m.synchronized = true
				m.addLogEntry("First packet received", false)
			}

			m.stats.Update(msg.packet, nil, msg.validationErrors)
			m.lastPacket = msg.packet

			if len(msg.validationErrors) > 0 {
				for _, err := range msg.validationErrors {
					m.addLogEntry(err.Message, true)
				}
			} else if m.showAll {
				m.addLogEntry(fmt.Sprintf("packet from %q (valid)", msg.packet.Platform()), false)
			}
		}
	}

	return m, nil
}

func (m *watchModel) addLogEntry(message string, isError bool) {
	entry := eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.eventLog = append(m.eventLog, entry)

	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("KLVGEN - STREAM MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("Listening: %s | Mode: %s | Press 'q' to quit",
		m.listenAddr, func() string {
			if m.showAll {
				return "All packets"
			}
			return "Anomalies only"
		}())))
	s.WriteString("\n\n")

	if !m.synchronized {
		s.WriteString(warningStyle.Render(m.spin.View() + " Waiting for first packet..."))
		s.WriteString("\n\n")
	}

	// Statistics
	m.stats.CalculateRates()
	var validPercent, errorPercent float64
	totalErrors := m.stats.ChecksumErrors + m.stats.DecodeErrors + m.stats.AnomalousPackets
	if m.stats.TotalPackets > 0 {
		validPercent = float64(m.stats.ValidPackets) * 100.0 / float64(m.stats.TotalPackets)
		errorPercent = float64(totalErrors) * 100.0 / float64(m.stats.TotalPackets)
	}

	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalPackets)),
		labelStyle.Render("Valid:"), valueStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.ValidPackets, validPercent)),
		labelStyle.Render("Errors:"), errorStyle.Render(fmt.Sprintf("%d (%.1f%%)", totalErrors, errorPercent)),
	))

	if m.stats.ChecksumErrors > 0 || m.stats.DecodeErrors > 0 {
		statsContent.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			labelStyle.Render("Checksum Errors:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.ChecksumErrors)),
			labelStyle.Render("Decode Errors:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.DecodeErrors)),
		))
	}

	if m.stats.AnomalousPackets > 0 {
		statsContent.WriteString(fmt.Sprintf("%s %s",
			labelStyle.Render("Anomalous:"), warningStyle.Render(fmt.Sprintf("%d", m.stats.AnomalousPackets)),
		))
		statsContent.WriteString(fmt.Sprintf(" (%s: %d, %s: %d, %s: %d)",
			headerStyle.Render("error sentinels"), m.stats.ErrorSentinels,
			headerStyle.Render("version"), m.stats.VersionMismatch,
			headerStyle.Render("bad identifiers"), m.stats.NonPrintableIDs,
		))
		statsContent.WriteString("\n")
	}

	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Packet Rate:"), valueStyle.Render(fmt.Sprintf("%.1f pkts/s", m.stats.PacketRate)),
		labelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
			}
			return valueStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
		}(),
	))

	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Latest telemetry
	if m.lastPacket != nil {
		s.WriteString(labelStyle.Render("Latest Telemetry:"))
		s.WriteString("\n")

		p := m.lastPacket
		telemetry := strings.Builder{}
		telemetry.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			labelStyle.Render("Mission:"), valueStyle.Render(p.MissionID()),
			labelStyle.Render("Platform:"), valueStyle.Render(p.Platform()),
		))
		telemetry.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			labelStyle.Render("Latitude:"), valueStyle.Render(fmt.Sprintf("%.6f deg", p.Latitude())),
			labelStyle.Render("Longitude:"), valueStyle.Render(fmt.Sprintf("%.6f deg", p.Longitude())),
		))
		telemetry.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			labelStyle.Render("Altitude:"), valueStyle.Render(fmt.Sprintf("%.1f m", p.Altitude())),
			labelStyle.Render("Version:"), valueStyle.Render(fmt.Sprintf("0x%02X", p.Version())),
		))
		telemetry.WriteString(fmt.Sprintf("%s %s",
			labelStyle.Render("Timestamp:"), valueStyle.Render(p.Time().Format("2006-01-02 15:04:05.000000 UTC")),
		))

		s.WriteString(boxStyle.Render(telemetry.String()))
		s.WriteString("\n\n")
	}

	// Event log
	s.WriteString(labelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	logHeight := m.height - 16
	if logHeight < 5 {
		logHeight = 5
	}

	logContent := strings.Builder{}
	startIdx := len(m.eventLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.eventLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.eventLog); i++ {
			entry := m.eventLog[i]
			timestamp := entry.timestamp.Format("01/02/06 15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					warningStyle.Render("ℹ "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}

func runWatch(cmd *cobra.Command, args []string) error {
	conn, err := net.ListenPacket("udp", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return fmt.Errorf("failed to bind %s:%d: %v", address, port, err)
	}
	defer conn.Close()

	m := initialWatchModel(conn.LocalAddr().String(), watchShowAll)
	p := tea.NewProgram(m)

	// UDP reader goroutine
	go func() {
		buf := make([]byte, 512)
		for {
			n, _, err := conn.ReadFrom(buf)
			if err != nil {
				log.Printf("read error: %v", err)
				return
			}

			packet, decodeErr := misb601.DecodePacket(buf[:n])
			if decodeErr != nil {
				p.Send(packetMsg{decodeErr: decodeErr})
				continue
			}

			p.Send(packetMsg{
				packet:           packet,
				validationErrors: misb601.ValidatePacket(packet),
			})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}

	return nil
}
