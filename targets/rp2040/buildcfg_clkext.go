//go:build rp2040 && clkext

package main

import "dualdrive/core"

// Trust the crystal: never trim the capture time base
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.ClockSource = core.ClockExternal
	})
}
