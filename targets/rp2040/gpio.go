//go:build rp2040

package main

import (
	"machine"

	"dualdrive/core"
)

// statusLED is the status indicator output; see led_*.go
type statusLED interface {
	Set(on bool)
}

// Outputs implements core.GPIODriver for the direction lines and LED
type Outputs struct {
	pins [4]machine.Pin
	led  statusLED
}

// NewOutputs configures every line as an output
func NewOutputs() *Outputs {
	o := &Outputs{
		pins: [4]machine.Pin{
			core.LineFWD1: pinFWD1,
			core.LineFWD2: pinFWD2,
			core.LineREV1: pinREV1,
			core.LineREV2: pinREV2,
		},
		led: newStatusLED(),
	}
	for _, p := range o.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return o
}

// SetLine drives one line to an electrical level
func (o *Outputs) SetLine(line core.Line, high bool) {
	if line == core.LineLED {
		o.led.Set(high)
		return
	}
	o.pins[line].Set(high)
}
