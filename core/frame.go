package core

import "dualdrive/protocol"

// FrameSlots is the number of channel words in a serial frame
const FrameSlots = protocol.Channels

// frameUnsynced marks a decoder waiting for the header
const frameUnsynced = 2 * protocol.FrameWords

// FrameEvent classifies the outcome of feeding one byte
type FrameEvent uint8

const (
	FrameNone     FrameEvent = iota // byte consumed, nothing completed
	FrameSync                       // header seen, new frame started
	FrameWord                       // a channel word completed (Slot, Value)
	FrameComplete                   // checksum matched
	FrameDropped                    // checksum mismatch, waiting for resync
)

// FrameResult is returned by FrameDecoder.Feed
type FrameResult struct {
	Event FrameEvent
	Slot  uint8  // 1-based word index, valid for FrameWord
	Value uint16 // masked 12-bit value, valid for FrameWord
}

// FrameDecoder is a byte-at-a-time iBus frame decoder.
// Any 0x20 0x40 pair restarts the frame, even in the middle of a payload.
type FrameDecoder struct {
	prev  byte
	cur   byte
	index uint8 // byte position since the header, frameUnsynced when idle
	sum   uint16
}

// NewFrameDecoder returns a decoder waiting for the header
func NewFrameDecoder() FrameDecoder {
	return FrameDecoder{index: frameUnsynced}
}

// Synced reports whether the decoder is inside a frame
func (d *FrameDecoder) Synced() bool {
	return d.index != frameUnsynced
}

// Feed consumes one byte
func (d *FrameDecoder) Feed(b byte) FrameResult {
	d.prev = d.cur
	d.cur = b
	if d.prev == protocol.Header1 && d.cur == protocol.Header2 {
		d.index = 0
		d.sum = protocol.ChecksumSeed
		return FrameResult{Event: FrameSync}
	}
	if d.index == frameUnsynced {
		return FrameResult{}
	}
	d.index++
	if d.index&1 != 0 {
		return FrameResult{}
	}
	v := uint16(d.prev) | uint16(d.cur)<<8
	if d.index == frameUnsynced {
		// End of chunk; the decoder is idle again either way
		if d.sum != v {
			return FrameResult{Event: FrameDropped}
		}
		return FrameResult{Event: FrameComplete}
	}
	d.sum -= uint16(d.prev) + uint16(d.cur)
	return FrameResult{
		Event: FrameWord,
		Slot:  d.index >> 1,
		Value: v & protocol.ChannelMask,
	}
}
