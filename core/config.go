package core

import "errors"

// MixMode selects how the two channel offsets map onto the two motors
type MixMode uint8

const (
	// MixDifferential drives A from a+b and B from a-b (throttle/steering)
	MixDifferential MixMode = iota
	// MixIndependent drives each motor from its own channel
	MixIndependent
)

// ClockSource tells the core whether the time base can drift
type ClockSource uint8

const (
	ClockInternal ClockSource = iota // trimmable RC oscillator, calibration runs
	ClockExternal                    // crystal or OS clock, calibration disabled
)

// FrameCommit selects how serial slot values reach the channels
type FrameCommit uint8

const (
	// CommitPartial applies each slot as soon as its word is decoded.
	// Slots already applied are kept when the checksum later fails.
	CommitPartial FrameCommit = iota
	// CommitAtomic stages slot values and applies them on checksum match.
	CommitAtomic
)

// CalibrationPolicy selects what happens when a full sample window
// passes without a trim decision
type CalibrationPolicy uint8

const (
	// CalibrationLatch keeps the sample counter at the window size, which
	// stops all further comparisons until the core is reset.
	CalibrationLatch CalibrationPolicy = iota
	// CalibrationRestart starts a new window and keeps the integrator.
	CalibrationRestart
)

// Polarity holds the active-low flags for every output line
type Polarity struct {
	PWM  bool // PWM outputs active low (applied by the PWM driver)
	FWD1 bool
	FWD2 bool
	REV1 bool
	REV2 bool
	LED  bool
}

// Config is the build-time configuration of the controller.
// Targets assemble it from build tags; nothing reads it at runtime.
type Config struct {
	Mode MixMode

	// PWMMin and PWMMax are the minimum and maximum non-zero duty cycle (%)
	PWMMin uint8
	PWMMax uint8

	// PWMDivider is the PWM frequency divider (0..15)
	// F_PWM = ClockHz*(PWMMax-PWMMin)/(45000*2^PWMDivider)
	PWMDivider uint8

	ClockHz     uint32
	ClockSource ClockSource

	Polarity Polarity

	// SerialSlots maps channel 1 and 2 to iBus word indices (1..14).
	// A zero slot leaves that channel untouched by serial input.
	SerialSlots [2]uint8

	FrameCommit FrameCommit
	Calibration CalibrationPolicy

	// Debug enables the diagnostic telemetry stream
	Debug bool
}

// DefaultConfig matches the stock firmware build
func DefaultConfig() Config {
	return Config{
		Mode:        MixDifferential,
		PWMMin:      10,
		PWMMax:      100,
		PWMDivider:  0,
		ClockHz:     8000000,
		ClockSource: ClockInternal,
		Polarity:    Polarity{LED: true},
		SerialSlots: [2]uint8{3, 4},
		FrameCommit: CommitPartial,
		Calibration: CalibrationLatch,
	}
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	if c.PWMMax > 100 || c.PWMMin >= c.PWMMax {
		errs = append(errs, ErrDutyRange)
	}
	if c.PWMDivider > 15 {
		errs = append(errs, ErrPWMDivider)
	}
	if c.ClockHz == 0 {
		errs = append(errs, ErrClock)
	}
	for _, s := range c.SerialSlots {
		if s > FrameSlots {
			errs = append(errs, ErrSerialSlot)
			break
		}
	}
	if c.SerialSlots[0] != 0 && c.SerialSlots[0] == c.SerialSlots[1] {
		errs = append(errs, ErrSerialSlot)
	}
	if c.Mode > MixIndependent {
		errs = append(errs, ErrMixMode)
	}
	return errors.Join(errs...)
}

// DutyCounts converts a duty percentage into PWM comparator counts.
// One count corresponds to one unit of channel offset inside the linear band.
func (c *Config) DutyCounts(percent uint8) uint16 {
	return uint16(uint32(LinearSpan) * uint32(percent) / uint32(c.PWMMax-c.PWMMin))
}

// PWMPeriod returns the PWM period in comparator counts
func (c *Config) PWMPeriod() uint16 {
	return c.DutyCounts(100)
}

// PWMFrequency returns the resulting PWM frequency in Hz
func (c *Config) PWMFrequency() uint32 {
	return uint32(uint64(c.ClockHz) * uint64(c.PWMMax-c.PWMMin) / (45000 << c.PWMDivider))
}

// CalibrationEnabled reports whether the oscillator trim loop may run
func (c *Config) CalibrationEnabled() bool {
	return c.ClockSource == ClockInternal
}
