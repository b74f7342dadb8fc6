package mcu

import (
	"fmt"
	"time"

	"dualdrive/host/ibus"
	"dualdrive/host/monitor"
	"dualdrive/host/serial"
)

// MCU represents a serial connection to a dualdrive board.
// The board reads iBus frames on RX and, in debug builds, writes
// telemetry rows on TX, so one port carries both directions.
type MCU struct {
	// Serial port
	port   serial.Port
	device string

	// Frame source for the RX side
	tx *ibus.Transmitter

	// Connection state
	connected bool
}

// NewMCU creates a new MCU instance (not yet connected)
func NewMCU() *MCU {
	return &MCU{
		connected: false,
	}
}

// Connect connects to a board via serial port
func (m *MCU) Connect(device string, interval time.Duration) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device), interval)
}

// ConnectWithConfig connects to a board with a custom serial config
func (m *MCU) ConnectWithConfig(cfg *serial.Config, interval time.Duration) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	m.Attach(port, interval)
	m.device = cfg.Device

	// Drop whatever the board printed before we were listening
	if err := port.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", cfg.Device, err)
	}
	return nil
}

// Attach uses an already open port
func (m *MCU) Attach(port serial.Port, interval time.Duration) {
	m.port = port
	m.tx = ibus.NewTransmitter(port, interval)
	m.connected = true
}

// Close closes the connection to the board
func (m *MCU) Close() error {
	if m.port != nil {
		if err := m.port.Close(); err != nil {
			return err
		}
	}
	m.connected = false
	return nil
}

// Transmitter returns the iBus frame source, nil before Connect
func (m *MCU) Transmitter() *ibus.Transmitter {
	return m.tx
}

// Telemetry returns a reader over the board's debug output
func (m *MCU) Telemetry() (*monitor.Reader, error) {
	if !m.connected {
		return nil, fmt.Errorf("not connected to board")
	}
	return monitor.NewReader(m.port), nil
}

// SetChannels updates the slots mapped to channel 1 and 2 and sends one
// frame right away
func (m *MCU) SetChannels(slots [2]uint8, values [2]uint16) error {
	if !m.connected {
		return fmt.Errorf("not connected to board")
	}
	for i, slot := range slots {
		if err := m.tx.SetSlot(slot, values[i]); err != nil {
			return fmt.Errorf("channel %d: %w", i+1, err)
		}
	}
	return m.tx.SendFrame()
}

// Device returns the path of the open port
func (m *MCU) Device() string {
	return m.device
}

// IsConnected returns whether the board is connected
func (m *MCU) IsConnected() bool {
	return m.connected
}
