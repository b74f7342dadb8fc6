package core

import (
	"testing"

	"dualdrive/protocol"
)

// feedAll feeds every byte and returns the non-trivial results
func feedAll(d *FrameDecoder, data []byte) []FrameResult {
	var out []FrameResult
	for _, b := range data {
		if r := d.Feed(b); r.Event != FrameNone {
			out = append(out, r)
		}
	}
	return out
}

func TestFrameDecoderRoundTrip(t *testing.T) {
	var values protocol.ChannelValues
	for i := range values {
		values[i] = uint16(1000 + i*10)
	}
	frame := protocol.EncodeFrame(values)

	d := NewFrameDecoder()
	if d.Synced() {
		t.Fatal("New decoder reports synced")
	}
	results := feedAll(&d, frame[:])

	if len(results) != 1+protocol.Channels+1 {
		t.Fatalf("Expected %d events, got %d", protocol.Channels+2, len(results))
	}
	if results[0].Event != FrameSync {
		t.Errorf("Expected FrameSync first, got %d", results[0].Event)
	}
	for i, r := range results[1 : 1+protocol.Channels] {
		if r.Event != FrameWord {
			t.Fatalf("Event %d: expected FrameWord, got %d", i, r.Event)
		}
		if r.Slot != uint8(i+1) {
			t.Errorf("Event %d: expected slot %d, got %d", i, i+1, r.Slot)
		}
		if r.Value != values[i] {
			t.Errorf("Slot %d: expected %d, got %d", r.Slot, values[i], r.Value)
		}
	}
	if last := results[len(results)-1]; last.Event != FrameComplete {
		t.Errorf("Expected FrameComplete last, got %d", last.Event)
	}
	if d.Synced() {
		t.Error("Decoder still synced after the checksum word")
	}
}

func TestFrameDecoderMasksValues(t *testing.T) {
	values := protocol.Centered()
	values.SetSlot(3, 0x0FFF)
	frame := protocol.EncodeFrame(values)
	// Set flag bits above the 12-bit value and fix up the checksum
	frame[7] |= 0x30
	sum := protocol.Checksum(frame[2 : protocol.FrameSize-2])
	frame[protocol.FrameSize-2] = byte(sum)
	frame[protocol.FrameSize-1] = byte(sum >> 8)

	d := NewFrameDecoder()
	complete := 0
	for _, r := range feedAll(&d, frame[:]) {
		if r.Event == FrameWord && r.Slot == 3 && r.Value != 0x0FFF {
			t.Errorf("Expected masked 0x0FFF, got 0x%04X", r.Value)
		}
		if r.Event == FrameComplete {
			complete++
		}
	}
	if complete != 1 {
		t.Errorf("Expected one complete frame, got %d", complete)
	}
}

func TestFrameDecoderChecksumMismatch(t *testing.T) {
	frame := protocol.EncodeFrame(protocol.Centered())
	frame[protocol.FrameSize-1] ^= 0x01

	d := NewFrameDecoder()
	results := feedAll(&d, frame[:])
	last := results[len(results)-1]
	if last.Event != FrameDropped {
		t.Fatalf("Expected FrameDropped, got %d", last.Event)
	}
	for _, r := range results {
		if r.Event == FrameComplete {
			t.Error("Corrupted frame reported complete")
		}
	}

	// Trailing bytes are ignored until the next header
	if r := feedAll(&d, []byte{0xDC, 0x05, 0x11}); len(r) != 0 {
		t.Errorf("Unsynced decoder produced %d events", len(r))
	}

	good := protocol.EncodeFrame(protocol.Centered())
	results = feedAll(&d, good[:])
	if results[len(results)-1].Event != FrameComplete {
		t.Error("Decoder did not recover on the next frame")
	}
}

func TestFrameDecoderResyncMidFrame(t *testing.T) {
	first := protocol.EncodeFrame(protocol.Centered())
	values := protocol.Centered()
	values.SetSlot(3, 1600)
	values.SetSlot(4, 1400)
	second := protocol.EncodeFrame(values)

	data := append([]byte{}, first[:13]...)
	data = append(data, second[:]...)

	d := NewFrameDecoder()
	syncs, complete := 0, 0
	got := map[uint8]uint16{}
	for _, r := range feedAll(&d, data) {
		switch r.Event {
		case FrameSync:
			syncs++
		case FrameWord:
			got[r.Slot] = r.Value
		case FrameComplete:
			complete++
		case FrameDropped:
			t.Error("Resynced frame dropped")
		}
	}
	if syncs != 2 {
		t.Errorf("Expected 2 syncs, got %d", syncs)
	}
	if complete != 1 {
		t.Errorf("Expected 1 complete frame, got %d", complete)
	}
	if got[3] != 1600 || got[4] != 1400 {
		t.Errorf("Expected slots 3,4 = 1600,1400, got %d,%d", got[3], got[4])
	}
}
