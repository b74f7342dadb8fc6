package core

import "dualdrive/protocol"

// Snapshot is a consistent copy of controller state for reporting
type Snapshot struct {
	Raw           [2]uint16
	Offset        [2]int16
	Motors        [2]MotorCommand
	Serial        bool // serial input has taken over
	Trim          int16
	Frozen        bool
	FramesOK      uint32
	FramesDropped uint32
	Captures      uint32
}

// Snapshot copies the shared state inside a critical section.
// It must not be called from a handler.
func (c *Controller) Snapshot() Snapshot {
	var s Snapshot
	Critical(func() {
		s = c.snapshot()
	})
	return s
}

func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		Motors:        c.motors,
		Serial:        c.serialActive,
		Trim:          c.calib.Trim(),
		Frozen:        c.calib.Frozen(),
		FramesOK:      c.framesOK,
		FramesDropped: c.framesDropped,
		Captures:      c.captures,
	}
	for i := range c.channels {
		s.Raw[i] = c.channels[i].Raw()
		s.Offset[i] = c.channels[i].Offset()
	}
	return s
}

// Telemetry converts the snapshot into a diagnostic line record
func (s *Snapshot) Telemetry() protocol.Telemetry {
	t := protocol.Telemetry{Raw: s.Raw, Offset: s.Offset}
	for i, m := range s.Motors {
		t.Duty[i] = m.Duty
		t.Forward[i] = m.Forward
		t.Reverse[i] = m.Reverse
	}
	return t
}
