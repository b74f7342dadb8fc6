//go:build linux && debug

package main

import "dualdrive/core"

// Telemetry rows on stdout after every status tick
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.Debug = true
	})
}
