//go:build rp2040

package main

import (
	"machine"

	"dualdrive/protocol"
)

var newline = []byte("\n")

// initUART opens UART0: iBus frames arrive on RX, debug text leaves on TX
func initUART() (*machine.UART, error) {
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{
		BaudRate: protocol.BaudRate,
		TX:       pinUARTTX,
		RX:       pinUARTRX,
	})
	if err != nil {
		return nil, err
	}
	return uart, nil
}

// writeLine writes s followed by a newline, blocking until queued
func writeLine(uart *machine.UART, s string) {
	uart.Write([]byte(s))
	uart.Write(newline)
}
