// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kevan Ahlquist

package cmd

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.bug.st/serial"
	"golang.org/x/term"
)

// Output is a best-effort sink for encoded packets. One Write call carries
// exactly one 78-byte packet.
type Output interface {
	io.Writer
	io.Closer
}

// UDPOutput sends each packet as a single datagram to a fixed destination
type UDPOutput struct {
	conn *net.UDPConn
}

func (u *UDPOutput) Write(p []byte) (int, error) {
	return u.conn.Write(p)
}

func (u *UDPOutput) Close() error {
	return u.conn.Close()
}

// SerialOutput writes packets to a serial port
type SerialOutput struct {
	port serial.Port
}

func (s *SerialOutput) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *SerialOutput) Close() error {
	return s.port.Close()
}

// WebSocketOutput sends each packet as one binary WebSocket message
type WebSocketOutput struct {
	conn *websocket.Conn
}

func (w *WebSocketOutput) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *WebSocketOutput) Close() error {
	return w.conn.Close()
}

// OpenUDPOutput resolves and connects a UDP socket to the destination. The
// connection is connected in the UDP sense only: it fixes the destination
// and surfaces local errors, there is no handshake.
func OpenUDPOutput(address string, port int) (Output, error) {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return nil, fmt.Errorf("invalid destination %s:%d: %v", address, port, err)
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create UDP socket: %v", err)
	}

	return &UDPOutput{conn: conn}, nil
}

// OpenSerialOutput opens a serial port for packet output
func OpenSerialOutput(portName string, baudRate int) (Output, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}

	return &SerialOutput{port: port}, nil
}

// OpenWebSocketOutput opens a WebSocket connection with HTTP Basic auth
func OpenWebSocketOutput(wsURL, username, password string, skipSSLVerify bool) (Output, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	return &WebSocketOutput{conn: conn}, nil
}

// GetPassword retrieves the WebSocket password from the environment or
// prompts the user without echo
func GetPassword() (string, error) {
	if pw := os.Getenv("KLVGEN_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// OpenOutput opens the packet output selected by the connection flags:
// WebSocket if --url is set, serial if --serial-port is set, UDP otherwise.
func OpenOutput() (Output, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		out, err := OpenWebSocketOutput(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}

		return out, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if serialPort != "" {
		out, err := OpenSerialOutput(serialPort, baudRate)
		if err != nil {
			return nil, "", err
		}

		return out, fmt.Sprintf("Serial: %s @ %d baud", serialPort, baudRate), nil
	}

	out, err := OpenUDPOutput(address, port)
	if err != nil {
		return nil, "", err
	}

	return out, fmt.Sprintf("UDP: %s:%d", address, port), nil
}
