//go:build rp2040 && debug

package main

import "dualdrive/core"

// Telemetry rows on UART TX after every status tick
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.Debug = true
	})
}
