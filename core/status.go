package core

// StatusIndicator encodes the number of valid channels as a blink count:
// after latching 2*valid+1 it toggles the LED on every tick but the last
type StatusIndicator struct {
	latch uint8
}

// Tick advances the indicator and reports whether the LED must toggle
func (s *StatusIndicator) Tick(valid uint8) bool {
	if s.latch == 0 {
		s.latch = 2*valid + 1
		return false
	}
	s.latch--
	return s.latch != 0
}

// Blinking reports whether a pattern is in progress
func (s *StatusIndicator) Blinking() bool {
	return s.latch != 0
}
