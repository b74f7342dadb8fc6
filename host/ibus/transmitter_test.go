package ibus

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"dualdrive/protocol"
)

func TestSendFrame(t *testing.T) {
	var buf bytes.Buffer
	tx := NewTransmitter(&buf, 0)
	if err := tx.SetSlot(3, 1600); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}
	if err := tx.SendFrame(); err != nil {
		t.Fatalf("SendFrame failed: %v", err)
	}

	if buf.Len() != protocol.FrameSize {
		t.Fatalf("Expected %d bytes, got %d", protocol.FrameSize, buf.Len())
	}
	values, err := protocol.DecodeFrame(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	if values.Slot(3) != 1600 || values.Slot(4) != 1500 {
		t.Errorf("Expected slots 3,4 = 1600,1500, got %d,%d", values.Slot(3), values.Slot(4))
	}
	if tx.Sent() != 1 {
		t.Errorf("Expected 1 frame sent, got %d", tx.Sent())
	}
}

func TestSetSlotRange(t *testing.T) {
	tx := NewTransmitter(&bytes.Buffer{}, 0)
	for _, slot := range []uint8{0, 15} {
		if err := tx.SetSlot(slot, 1500); err == nil {
			t.Errorf("Slot %d accepted", slot)
		}
	}
	tx.SetSlot(14, 2000)
	tx.Center()
	if v := tx.Values(); v != protocol.Centered() {
		t.Errorf("Center did not reset values: %v", v)
	}
}

func TestRunCount(t *testing.T) {
	var buf bytes.Buffer
	tx := NewTransmitter(&buf, time.Millisecond)
	if err := tx.Run(context.Background(), 3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if buf.Len() != 3*protocol.FrameSize {
		t.Errorf("Expected 3 frames, got %d bytes", buf.Len())
	}
}

func TestRunCancel(t *testing.T) {
	var buf bytes.Buffer
	tx := NewTransmitter(&buf, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tx.Run(ctx, 0); err != nil {
		t.Fatalf("Run returned %v on cancel", err)
	}
	if tx.Sent() != 1 {
		t.Errorf("Expected 1 frame before cancellation, got %d", tx.Sent())
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunWriteError(t *testing.T) {
	tx := NewTransmitter(failWriter{}, time.Millisecond)
	if err := tx.Run(context.Background(), 0); !errors.Is(err, errWrite) {
		t.Errorf("Expected write error, got %v", err)
	}
}
