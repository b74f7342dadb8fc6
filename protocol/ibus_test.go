package protocol

import (
	"errors"
	"testing"
)

func TestChecksumSeed(t *testing.T) {
	if ChecksumSeed != 0xFF9F {
		t.Fatalf("Expected seed 0xFF9F, got 0x%04X", ChecksumSeed)
	}
	if got := Checksum(nil); got != 0xFF9F {
		t.Errorf("Checksum of empty payload: expected 0xFF9F, got 0x%04X", got)
	}
}

func TestEncodeFrameLayout(t *testing.T) {
	values := Centered()
	values.SetSlot(3, 0x0FFF)
	values.SetSlot(4, 0xF123) // upper bits are masked away

	frame := EncodeFrame(values)

	if frame[0] != Header1 || frame[1] != Header2 {
		t.Fatalf("Bad header: % X", frame[:2])
	}
	// slot 3 occupies bytes 6,7 (little endian)
	if frame[6] != 0xFF || frame[7] != 0x0F {
		t.Errorf("Slot 3 encoded as % X, expected FF 0F", frame[6:8])
	}
	if frame[8] != 0x23 || frame[9] != 0x01 {
		t.Errorf("Slot 4 encoded as % X, expected 23 01", frame[8:10])
	}

	sum := Checksum(frame[2:30])
	if got := uint16(frame[30]) | uint16(frame[31])<<8; got != sum {
		t.Errorf("Trailer 0x%04X does not match checksum 0x%04X", got, sum)
	}
}

func TestDecodeFrame(t *testing.T) {
	values := Centered()
	values.SetSlot(1, 1000)
	values.SetSlot(14, 2000)
	frame := EncodeFrame(values)

	got, err := DecodeFrame(frame[:])
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	if got != values {
		t.Errorf("Decoded %v, expected %v", got, values)
	}
	if got.Slot(1) != 1000 || got.Slot(14) != 2000 {
		t.Errorf("Slot accessors returned %d/%d", got.Slot(1), got.Slot(14))
	}
	if got.Slot(0) != 0 || got.Slot(15) != 0 {
		t.Error("Out of range slots should read as 0")
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	good := EncodeFrame(Centered())

	corrupt := good
	corrupt[10] ^= 0x01

	badHeader := good
	badHeader[1] = 0x41

	testCases := []struct {
		name  string
		frame []byte
		err   error
	}{
		{"short", good[:31], ErrShortFrame},
		{"header", badHeader[:], ErrBadHeader},
		{"checksum", corrupt[:], ErrChecksum},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeFrame(tc.frame)
			if !errors.Is(err, tc.err) {
				t.Errorf("Expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestSlotOnReturnedValue(t *testing.T) {
	centered := func() ChannelValues { return Centered() }
	if got := centered().Slot(3); got != 1500 {
		t.Errorf("Expected 1500 from slot 3 of a returned frame, got %d", got)
	}
}
