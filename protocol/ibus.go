package protocol

import (
	"encoding/binary"
	"errors"
)

// Frame errors
var (
	ErrShortFrame = errors.New("ibus: frame shorter than 32 bytes")
	ErrBadHeader  = errors.New("ibus: missing 0x20 0x40 header")
	ErrChecksum   = errors.New("ibus: checksum mismatch")
)

// ChannelValues holds the 14 channel words of one frame, index 0 = slot 1
type ChannelValues [Channels]uint16

// Checksum computes the running subtractive checksum over the channel
// bytes of a frame (bytes 2..29), seeded as if the header was consumed
func Checksum(payload []byte) uint16 {
	sum := uint16(ChecksumSeed)
	for _, b := range payload {
		sum -= uint16(b)
	}
	return sum
}

// EncodeFrame builds a complete frame. Values are masked to 12 bits.
func EncodeFrame(values ChannelValues) [FrameSize]byte {
	var frame [FrameSize]byte
	frame[0] = Header1
	frame[1] = Header2
	for i, v := range values {
		binary.LittleEndian.PutUint16(frame[2+2*i:], v&ChannelMask)
	}
	binary.LittleEndian.PutUint16(frame[FrameSize-2:], Checksum(frame[2:FrameSize-2]))
	return frame
}

// DecodeFrame validates a complete frame and returns its channel values
func DecodeFrame(frame []byte) (ChannelValues, error) {
	var values ChannelValues
	if len(frame) < FrameSize {
		return values, ErrShortFrame
	}
	if frame[0] != Header1 || frame[1] != Header2 {
		return values, ErrBadHeader
	}
	want := binary.LittleEndian.Uint16(frame[FrameSize-2:])
	if Checksum(frame[2:FrameSize-2]) != want {
		return values, ErrChecksum
	}
	for i := range values {
		values[i] = binary.LittleEndian.Uint16(frame[2+2*i:]) & ChannelMask
	}
	return values, nil
}

// Slot returns the value of a 1-based slot, or 0 for slot 0 / out of range
func (v ChannelValues) Slot(slot uint8) uint16 {
	if slot == 0 || int(slot) > len(v) {
		return 0
	}
	return v[slot-1]
}

// SetSlot sets the value of a 1-based slot; out of range slots are ignored
func (v *ChannelValues) SetSlot(slot uint8, value uint16) {
	if slot == 0 || int(slot) > len(v) {
		return
	}
	v[slot-1] = value
}

// Centered returns a frame with every channel at 1500
func Centered() ChannelValues {
	var v ChannelValues
	for i := range v {
		v[i] = 1500
	}
	return v
}
