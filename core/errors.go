package core

import "errors"

// Configuration errors
var (
	// ErrDutyRange indicates PWMMin/PWMMax are not 0 <= min < max <= 100
	ErrDutyRange = errors.New("duty range must satisfy 0 <= min < max <= 100")

	// ErrPWMDivider indicates a divider outside 0..15
	ErrPWMDivider = errors.New("pwm divider must be between 0 and 15")

	// ErrClock indicates a zero clock frequency
	ErrClock = errors.New("clock frequency must be non-zero")

	// ErrSerialSlot indicates an out-of-range or duplicated serial slot
	ErrSerialSlot = errors.New("serial slots must be distinct and between 1 and 14")

	// ErrMixMode indicates an unknown mixing mode
	ErrMixMode = errors.New("unknown mix mode")

	// ErrNoPWM indicates a board without a PWM driver
	ErrNoPWM = errors.New("board has no PWM driver")

	// ErrNoGPIO indicates a board without a GPIO driver
	ErrNoGPIO = errors.New("board has no GPIO driver")
)
