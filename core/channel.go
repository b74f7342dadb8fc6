package core

// Pulse decoding limits, in capture ticks (1us)
const (
	PulseMin    = 800  // shorter pulses are treated as signal loss
	PulseMax    = 2200 // longer pulses are treated as signal loss
	PulseCenter = 1500
	ArmLow      = 1450 // re-arm band lower bound
	ArmHigh     = 1550 // re-arm band upper bound
)

// Channel is the decoder state of one RC input channel.
// A zero raw value means the channel is disarmed.
type Channel struct {
	raw    uint16
	offset int16
}

// Raw returns the last accepted raw value (0 when disarmed)
func (c Channel) Raw() uint16 {
	return c.raw
}

// Offset returns the signed deviation from center of the last accepted value
func (c Channel) Offset() int16 {
	return c.offset
}

// Armed reports whether the channel has seen a centered value since the
// last signal loss
func (c Channel) Armed() bool {
	return c.raw != 0
}

// Reset disarms the channel
func (c *Channel) Reset() {
	c.raw = 0
	c.offset = 0
}

// DecodePulse classifies a pulse width and returns the new offset.
// Widths outside [PulseMin, PulseMax] disarm the channel.
func (c *Channel) DecodePulse(width uint16) int16 {
	if width < PulseMin || width > PulseMax {
		c.Reset()
		return 0
	}
	return c.accept(width)
}

// DecodeEdges decodes the pulse bounded by two edge timestamps.
// The subtraction wraps like the 16-bit capture counter.
func (c *Channel) DecodeEdges(rise, fall uint16) int16 {
	return c.DecodePulse(Elapsed16(rise, fall))
}

// AcceptSerial applies a checksummed serial value. No validity window is
// used, but a zero value still means "no signal" and disarms.
func (c *Channel) AcceptSerial(value uint16) int16 {
	if value == 0 {
		c.Reset()
		return 0
	}
	return c.accept(value)
}

func (c *Channel) accept(v uint16) int16 {
	if c.raw == 0 && (v < ArmLow || v > ArmHigh) {
		// Reset required
		c.offset = 0
		return 0
	}
	c.raw = v
	c.offset = int16(int32(v) - PulseCenter)
	return c.offset
}
