//go:build rp2040 && clk16

package main

import "dualdrive/core"

// 16MHz reference clock doubles the PWM frequency
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.ClockHz = 16000000
	})
}
