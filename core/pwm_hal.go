package core

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// SetDuty loads the comparator of one motor output.
	// counts ranges from 0 (off) to Config.PWMPeriod() (fully on).
	SetDuty(motor Motor, counts uint16)
}
