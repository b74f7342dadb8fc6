//go:build rp2040 && !ws2812

package main

import "machine"

// pinLED drives the on-board LED
type pinLED struct {
	pin machine.Pin
}

func newStatusLED() statusLED {
	l := pinLED{pin: machine.LED}
	l.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return l
}

func (l pinLED) Set(high bool) {
	l.pin.Set(high)
}
