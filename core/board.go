package core

// ClockTrimmer nudges the trim register of an internal oscillator
type ClockTrimmer interface {
	Trim(step int8)
}

// Watchdog is a hardware reset timer. The first Feed arms it.
type Watchdog interface {
	Feed()
}

// CaptureControl switches off pulse capture once serial input takes over
type CaptureControl interface {
	DisableCapture()
}

// Board groups the hardware a Controller drives.
// PWM and GPIO are required, the rest may be nil.
type Board struct {
	PWM      PWMDriver
	GPIO     GPIODriver
	Trimmer  ClockTrimmer
	Watchdog Watchdog
	Capture  CaptureControl
}
