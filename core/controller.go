package core

// EdgeCapture is one rising/falling timestamp pair of a capture channel
type EdgeCapture struct {
	Rise  uint16
	Fall  uint16
	Valid bool // a falling edge completed the pair
}

// CaptureEvent is one capture interrupt. RiseFresh is set when the
// primary channel latched a new rising edge since the previous event.
type CaptureEvent struct {
	Ch        [2]EdgeCapture
	RiseFresh bool
}

// Controller owns all decoder, calibration and output state.
// Its handler methods must be called one at a time, normally from
// inside Critical.
type Controller struct {
	cfg   Config
	board Board

	channels [2]Channel
	motors   [2]MotorCommand

	frame  FrameDecoder
	staged [2]uint16
	stage  [2]bool

	calib  Calibrator
	status StatusIndicator
	ledOn  bool

	serialActive    bool
	captureDisabled bool

	framesOK      uint32
	framesDropped uint32
	captures      uint32
}

// NewController validates the configuration and binds the board
func NewController(cfg Config, board Board) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board.PWM == nil {
		return nil, ErrNoPWM
	}
	if board.GPIO == nil {
		return nil, ErrNoGPIO
	}
	return &Controller{
		cfg:   cfg,
		board: board,
		frame: NewFrameDecoder(),
		calib: NewCalibrator(cfg.Calibration),
	}, nil
}

// Config returns the configuration the controller was built with
func (c *Controller) Config() Config {
	return c.cfg
}

// Start drives every output to its inactive level.
// The watchdog is not touched, so it stays unarmed until the first update.
func (c *Controller) Start() {
	c.board.PWM.SetDuty(MotorA, 0)
	c.board.PWM.SetDuty(MotorB, 0)
	for _, l := range [...]Line{LineFWD1, LineFWD2, LineREV1, LineREV2, LineLED} {
		c.board.GPIO.SetLine(l, c.cfg.Polarity.Level(l, false))
	}
	c.ledOn = false
}

// HandleCapture processes one capture interrupt and refreshes the outputs
func (c *Controller) HandleCapture(ev CaptureEvent) {
	if c.serialActive {
		return
	}
	c.captures++

	if p := ev.Ch[0]; p.Valid {
		c.decodeEdges(0, p)
		if ev.RiseFresh && c.calibrating() {
			switch c.calib.Sample(p.Rise) {
			case TrimUp:
				c.board.Trimmer.Trim(1)
				RecordEvent(EvtTrimUp, 0, uint32(int32(c.calib.Error())), uint32(int32(c.calib.Trim())))
			case TrimDown:
				c.board.Trimmer.Trim(-1)
				RecordEvent(EvtTrimDown, 0, uint32(int32(c.calib.Error())), uint32(int32(c.calib.Trim())))
			}
		}
	}
	if s := ev.Ch[1]; s.Valid {
		c.decodeEdges(1, s)
	}
	c.update()
}

func (c *Controller) decodeEdges(ch int, e EdgeCapture) {
	was := c.channels[ch].Raw()
	c.channels[ch].DecodeEdges(e.Rise, e.Fall)
	if was != 0 && !c.channels[ch].Armed() {
		RecordEvent(EvtDisarm, uint8(ch), uint32(Elapsed16(e.Rise, e.Fall)), 0)
	}
}

func (c *Controller) calibrating() bool {
	return c.board.Trimmer != nil && c.cfg.CalibrationEnabled()
}

// HandleSerialByte feeds one received UART byte to the frame decoder
func (c *Controller) HandleSerialByte(b byte) {
	r := c.frame.Feed(b)
	switch r.Event {
	case FrameSync:
		c.stage = [2]bool{}
	case FrameWord:
		for ch, slot := range c.cfg.SerialSlots {
			if slot == 0 || slot != r.Slot {
				continue
			}
			if c.cfg.FrameCommit == CommitAtomic {
				c.staged[ch] = r.Value
				c.stage[ch] = true
			} else {
				c.acceptSerial(ch, r.Value)
			}
		}
	case FrameComplete:
		c.framesOK++
		for ch := range c.stage {
			if c.stage[ch] {
				c.acceptSerial(ch, c.staged[ch])
				c.stage[ch] = false
			}
		}
		RecordEvent(EvtFrameOK, 0, c.framesOK, 0)
		c.serialActive = true
		c.update()
		if !c.captureDisabled {
			c.captureDisabled = true
			if c.board.Capture != nil {
				c.board.Capture.DisableCapture()
			}
			RecordEvent(EvtCaptureDisabled, 0, 0, 0)
		}
	case FrameDropped:
		c.framesDropped++
		c.stage = [2]bool{}
		RecordEvent(EvtFrameDropped, 0, c.framesDropped, 0)
	}
}

func (c *Controller) acceptSerial(ch int, v uint16) {
	was := c.channels[ch].Raw()
	c.channels[ch].AcceptSerial(v)
	if was != 0 && !c.channels[ch].Armed() {
		RecordEvent(EvtDisarm, uint8(ch), uint32(v), 0)
	}
}

// HandleTick advances the status indicator by one slow tick
func (c *Controller) HandleTick() {
	if c.status.Tick(c.validChannels()) {
		c.ledOn = !c.ledOn
		c.board.GPIO.SetLine(LineLED, c.cfg.Polarity.Level(LineLED, c.ledOn))
	}
}

func (c *Controller) validChannels() uint8 {
	var n uint8
	for i := range c.channels {
		if c.channels[i].Armed() {
			n++
		}
	}
	return n
}

// update recomputes both motors and writes PWM, direction lines and
// watchdog in that order
func (c *Controller) update() {
	c.motors[MotorA], c.motors[MotorB] = c.cfg.Mix(c.channels[0].Offset(), c.channels[1].Offset())

	c.board.PWM.SetDuty(MotorA, c.motors[MotorA].Duty)
	c.board.PWM.SetDuty(MotorB, c.motors[MotorB].Duty)

	pol := &c.cfg.Polarity
	c.board.GPIO.SetLine(LineFWD1, pol.Level(LineFWD1, c.motors[MotorA].Forward))
	c.board.GPIO.SetLine(LineFWD2, pol.Level(LineFWD2, c.motors[MotorB].Forward))
	c.board.GPIO.SetLine(LineREV1, pol.Level(LineREV1, c.motors[MotorA].Reverse))
	c.board.GPIO.SetLine(LineREV2, pol.Level(LineREV2, c.motors[MotorB].Reverse))

	if c.board.Watchdog != nil {
		c.board.Watchdog.Feed()
	}
}

// Channel returns a copy of one channel's decoder state
func (c *Controller) Channel(ch int) Channel {
	return c.channels[ch]
}

// Motor returns the last command computed for a motor
func (c *Controller) Motor(m Motor) MotorCommand {
	return c.motors[m]
}

// Calibrator returns a copy of the calibration state
func (c *Controller) Calibrator() Calibrator {
	return c.calib
}

// SerialActive reports whether serial input has taken over
func (c *Controller) SerialActive() bool {
	return c.serialActive
}
