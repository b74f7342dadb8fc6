//go:build rp2040

package main

import "machine"

// Board wiring
const (
	pinCH1 = machine.GPIO2 // RC channel 1 pulse input
	pinCH2 = machine.GPIO3 // RC channel 2 pulse input

	// Both PWM outputs share slice 7 (channel A and B)
	pinPWM1 = machine.GPIO14
	pinPWM2 = machine.GPIO15

	pinFWD1 = machine.GPIO10
	pinFWD2 = machine.GPIO11
	pinREV1 = machine.GPIO12
	pinREV2 = machine.GPIO13

	pinUARTTX = machine.UART0_TX_PIN // telemetry out
	pinUARTRX = machine.UART0_RX_PIN // iBus in
)
