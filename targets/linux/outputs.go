//go:build linux

package main

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
	"github.com/warthog618/go-gpiocdev"

	"dualdrive/core"
)

// pwmSourceHz is the oscillator in front of the PWM clock divider
const pwmSourceHz = 19200000

// pwmClock returns the clock the integer PWM divider produces for a
// requested rate. The divider field is 12 bits and must be at least 2.
func pwmClock(want uint32) uint32 {
	if want == 0 {
		return pwmSourceHz / 4095
	}
	div := pwmSourceHz / want
	switch {
	case div < 2:
		div = 2
	case div > 4095:
		div = 4095
	}
	return pwmSourceHz / div
}

// MotorPWM drives BCM12 and BCM13 from the BCM2835 PWM block.
// One core count is one PWM clock cycle, so the output frequency only
// matches Config.PWMFrequency when the divider is exact.
type MotorPWM struct {
	pins     [2]rpio.Pin
	period   uint32
	clock    uint32
	inverted bool
}

// NewMotorPWM maps the PWM registers and starts both outputs at duty 0
func NewMotorPWM(cfg *core.Config) (*MotorPWM, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to map gpio registers: %w", err)
	}
	d := &MotorPWM{
		pins:     [2]rpio.Pin{rpio.Pin(pinPWM1), rpio.Pin(pinPWM2)},
		period:   uint32(cfg.PWMPeriod()),
		inverted: cfg.Polarity.PWM,
	}
	d.clock = pwmClock(cfg.PWMFrequency() * d.period)
	for i, p := range d.pins {
		p.Mode(rpio.Pwm)
		p.Freq(int(d.clock))
		d.SetDuty(core.Motor(i), 0)
	}
	return d, nil
}

// Frequency returns the PWM frequency the hardware actually runs at
func (d *MotorPWM) Frequency() uint32 {
	return d.clock / d.period
}

// SetDuty loads the comparator of one motor output. The PWM block has no
// output inversion, so active low is done by complementing the duty.
func (d *MotorPWM) SetDuty(motor core.Motor, counts uint16) {
	duty := uint32(counts)
	if d.inverted {
		duty = d.period - duty
	}
	d.pins[motor].DutyCycle(duty, d.period)
}

// Close stops both outputs and unmaps the registers
func (d *MotorPWM) Close() error {
	for _, p := range d.pins {
		p.DutyCycle(0, d.period)
	}
	return rpio.Close()
}

// Lines implements core.GPIODriver with gpiocdev output lines
type Lines struct {
	chip  *gpiocdev.Chip
	lines [5]*gpiocdev.Line
}

// NewLines requests every direction line and the LED as outputs, at the
// inactive level for the configured polarity
func NewLines(cfg *core.Config) (*Lines, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", chipName, err)
	}
	o := &Lines{chip: chip}
	offsets := [5]int{
		core.LineFWD1: lineFWD1,
		core.LineFWD2: lineFWD2,
		core.LineREV1: lineREV1,
		core.LineREV2: lineREV2,
		core.LineLED:  lineLED,
	}
	for i, offset := range offsets {
		initial := level(cfg.Polarity.Level(core.Line(i), false))
		l, err := chip.RequestLine(offset, gpiocdev.AsOutput(initial))
		if err != nil {
			o.Close()
			return nil, fmt.Errorf("failed to request %s:%d: %w", chipName, offset, err)
		}
		o.lines[i] = l
	}
	return o, nil
}

func level(high bool) int {
	if high {
		return 1
	}
	return 0
}

// SetLine drives one line to an electrical level
func (o *Lines) SetLine(line core.Line, high bool) {
	o.lines[line].SetValue(level(high))
}

// Close returns every line to an input
func (o *Lines) Close() error {
	for _, l := range o.lines {
		if l != nil {
			l.Reconfigure(gpiocdev.AsInput)
			l.Close()
		}
	}
	return o.chip.Close()
}
