package core

// Time base constants
const (
	CaptureFreq = 1000000 // capture resolution: 1us per tick

	// StatusTickUS is the slow periodic tick: a 16-bit 1us counter with a
	// repetition count of 4 (65536 * 4)
	StatusTickUS = 262144
)

var systemTicks uint32

// GetTime returns the current system time in microseconds
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (called by the target main loop)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// Elapsed16 returns t2-t1 on a 16-bit wrapping counter
func Elapsed16(t1, t2 uint16) uint16 {
	return t2 - t1
}

// TimerFromUS converts microseconds to scheduler ticks
func TimerFromUS(us uint32) uint32 {
	return us
}

// timeBefore compares two wrapping 32-bit timestamps
func timeBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ProcessTimers runs all scheduler timers that are due
func ProcessTimers() {
	TimerDispatch(GetTime())
}
