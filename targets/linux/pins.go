//go:build linux

package main

// Board wiring, BCM numbering on gpiochip0
const (
	chipName = "gpiochip0"

	lineCH1 = 17 // RC channel 1 pulse input
	lineCH2 = 27 // RC channel 2 pulse input

	lineFWD1 = 5
	lineFWD2 = 6
	lineREV1 = 16
	lineREV2 = 26
	lineLED  = 22

	// Hardware PWM0 and PWM1
	pinPWM1 = 12
	pinPWM2 = 13
)
