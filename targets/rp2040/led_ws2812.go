//go:build rp2040 && ws2812

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"dualdrive/core"
)

// pinWS2812 is the data pin of the on-board RGB LED (RP2040-Zero, QT Py)
const pinWS2812 = machine.GPIO16

var (
	ledOn  = []color.RGBA{{R: 0, G: 40, B: 0}}
	ledOff = []color.RGBA{{}}
)

// rgbLED shows the status indicator on a WS2812
type rgbLED struct {
	dev ws2812.Device
}

// The RGB LED has no electrical polarity
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.Polarity.LED = false
	})
}

func newStatusLED() statusLED {
	pinWS2812.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l := &rgbLED{dev: ws2812.New(pinWS2812)}
	l.Set(false)
	return l
}

func (l *rgbLED) Set(on bool) {
	if on {
		l.dev.WriteColors(ledOn)
	} else {
		l.dev.WriteColors(ledOff)
	}
}
