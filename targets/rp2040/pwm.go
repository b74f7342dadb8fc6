//go:build rp2040

package main

import (
	"machine"

	"dualdrive/core"
)

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetInverting(channel uint8, inverting bool)
}

// MotorPWM implements core.PWMDriver on one RP2040 PWM slice.
// Comparator counts from the core are rescaled to the slice's TOP.
type MotorPWM struct {
	pwm      pwmPeripheral
	channels [2]uint8
	period   uint32 // core counts per PWM period
}

// NewMotorPWM configures the slice for the frequency the core config
// implies and parks both outputs at duty 0
func NewMotorPWM(cfg *core.Config) (*MotorPWM, error) {
	d := &MotorPWM{
		pwm:    machine.PWM7,
		period: uint32(cfg.PWMPeriod()),
	}

	err := d.pwm.Configure(machine.PWMConfig{
		Period: 1000000000 / uint64(cfg.PWMFrequency()),
	})
	if err != nil {
		return nil, err
	}

	for i, pin := range [2]machine.Pin{pinPWM1, pinPWM2} {
		ch, err := d.pwm.Channel(pin)
		if err != nil {
			return nil, err
		}
		d.channels[i] = ch
		d.pwm.SetInverting(ch, cfg.Polarity.PWM)
		d.pwm.Set(ch, 0)
	}
	return d, nil
}

// SetDuty loads the comparator of one motor output
func (d *MotorPWM) SetDuty(motor core.Motor, counts uint16) {
	value := uint32(counts) * d.pwm.Top() / d.period
	d.pwm.Set(d.channels[motor], value)
}
