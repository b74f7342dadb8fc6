package core

// CalibrationWindow is the number of reference edges per trim decision
const CalibrationWindow = 8

// NominalPeriodStep is the granularity the input frame period is rounded
// to when estimating time base error (frame periods are whole milliseconds)
const NominalPeriodStep = 1000

// TrimResult is the decision taken for one reference edge
type TrimResult int8

const (
	TrimNone TrimResult = 0
	TrimUp   TrimResult = 1  // periods measure long, step the trim up
	TrimDown TrimResult = -1 // periods measure short, step the trim down
)

// Calibrator is a dead-band integrator that trims the oscillator from the
// period between rising edges of the reference channel
type Calibrator struct {
	policy CalibrationPolicy

	count  uint8  // reference edges seen in this window
	latch  uint16 // rising edge stored on odd samples
	err    int16  // cumulative error
	upper  int16
	lower  int16
	trim   int16 // net steps applied
	frozen bool
}

// NewCalibrator returns an idle calibrator
func NewCalibrator(policy CalibrationPolicy) Calibrator {
	return Calibrator{policy: policy}
}

// Sample feeds the timestamp of one reference rising edge and returns the
// trim step to apply
func (c *Calibrator) Sample(rise uint16) TrimResult {
	if c.count == CalibrationWindow {
		return TrimNone
	}
	c.count++
	if c.count&1 != 0 {
		c.latch = rise
		return TrimNone
	}

	// Use every other period between rising edges
	p := int32(int16(Elapsed16(c.latch, rise)))
	c.err += int16(p - ((p+NominalPeriodStep/2)/NominalPeriodStep)*NominalPeriodStep)
	if c.count != CalibrationWindow {
		return TrimNone
	}

	switch {
	case c.err > c.upper:
		c.lower = -c.err
		c.restart()
		c.trim++
		return TrimUp
	case c.err < c.lower:
		c.upper = -c.err
		c.restart()
		c.trim--
		return TrimDown
	}

	if c.policy == CalibrationRestart {
		c.count = 0
		return TrimNone
	}
	// Window full without a decision: stay latched
	c.frozen = true
	return TrimNone
}

func (c *Calibrator) restart() {
	c.err = 0
	c.count = 0
}

// Error returns the cumulative error of the current window
func (c *Calibrator) Error() int16 {
	return c.err
}

// Thresholds returns the current (upper, lower) bounds
func (c *Calibrator) Thresholds() (int16, int16) {
	return c.upper, c.lower
}

// Trim returns the net trim steps applied so far
func (c *Calibrator) Trim() int16 {
	return c.trim
}

// Frozen reports whether the latch policy stopped the loop
func (c *Calibrator) Frozen() bool {
	return c.frozen
}
