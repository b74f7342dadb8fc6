// Package ibus emulates a FlySky receiver's serial output so a board can
// be driven from a host without a radio
package ibus

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"dualdrive/protocol"
)

// DefaultInterval is the frame period of a FlySky receiver
const DefaultInterval = protocol.FramePeriodMS * time.Millisecond

// Transmitter streams iBus frames to a writer at a fixed interval
type Transmitter struct {
	w        io.Writer
	interval time.Duration

	mu     sync.Mutex
	values protocol.ChannelValues
	sent   uint64
}

// NewTransmitter returns a transmitter with every channel centered
func NewTransmitter(w io.Writer, interval time.Duration) *Transmitter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Transmitter{
		w:        w,
		interval: interval,
		values:   protocol.Centered(),
	}
}

// SetSlot changes one 1-based channel slot
func (t *Transmitter) SetSlot(slot uint8, value uint16) error {
	if slot == 0 || slot > protocol.Channels {
		return fmt.Errorf("slot %d out of range 1..%d", slot, protocol.Channels)
	}
	t.mu.Lock()
	t.values.SetSlot(slot, value)
	t.mu.Unlock()
	return nil
}

// Center puts every channel back to 1500
func (t *Transmitter) Center() {
	t.mu.Lock()
	t.values = protocol.Centered()
	t.mu.Unlock()
}

// Values returns the channel values of the next frame
func (t *Transmitter) Values() protocol.ChannelValues {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values
}

// Sent returns the number of frames written so far
func (t *Transmitter) Sent() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sent
}

// SendFrame writes one frame with the current values
func (t *Transmitter) SendFrame() error {
	t.mu.Lock()
	frame := protocol.EncodeFrame(t.values)
	t.mu.Unlock()

	if _, err := t.w.Write(frame[:]); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	t.mu.Lock()
	t.sent++
	t.mu.Unlock()
	return nil
}

// Run sends frames until the context is cancelled or count frames were
// sent (count 0 means no limit). A context cancellation is not an error.
func (t *Transmitter) Run(ctx context.Context, count int) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for n := 0; count == 0 || n < count; n++ {
		if err := t.SendFrame(); err != nil {
			return err
		}
		if count != 0 && n+1 == count {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
