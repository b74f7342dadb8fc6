package core

// Output stage limits, in offset units
const (
	DeadZone   = 50  // |v| below this gives duty 0
	FullScale  = 500 // |v| above this gives the maximum duty
	LinearSpan = FullScale - DeadZone
)

// Motor identifies one of the two outputs
type Motor uint8

const (
	MotorA Motor = iota
	MotorB
)

// MotorCommand is the computed output of one motor.
// Forward and Reverse are never both set.
type MotorCommand struct {
	Duty    uint16 // PWM comparator counts, 0 = off
	Forward bool
	Reverse bool
}

// Stopped reports whether the motor coasts with no direction enabled
func (m MotorCommand) Stopped() bool {
	return m.Duty == 0 && !m.Forward && !m.Reverse
}

// Transform maps a signed command value onto duty and direction
func (c *Config) Transform(v int16) MotorCommand {
	var m MotorCommand
	m.Forward = v > DeadZone
	m.Reverse = v < -DeadZone
	a := int32(v)
	if a < 0 {
		a = -a
	}
	switch {
	case a < DeadZone:
		m.Duty = 0
	case a > FullScale:
		m.Duty = c.DutyCounts(c.PWMMax)
	default:
		m.Duty = c.DutyCounts(c.PWMMin) + uint16(a-DeadZone)
	}
	return m
}

// Mix computes both motor commands from the two channel offsets
func (c *Config) Mix(a, b int16) (MotorCommand, MotorCommand) {
	if c.Mode == MixIndependent {
		return c.Transform(a), c.Transform(b)
	}
	return c.Transform(sat16(int32(a) + int32(b))), c.Transform(sat16(int32(a) - int32(b)))
}

// sat16 clamps to the int16 range
func sat16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
