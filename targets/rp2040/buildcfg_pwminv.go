//go:build rp2040 && pwminv

package main

import "dualdrive/core"

func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.Polarity.PWM = true
	})
}
