//go:build linux && indep

package main

import "dualdrive/core"

// Independent channels instead of differential mixing
func init() {
	tagOptions = append(tagOptions, func(c *core.Config) {
		c.Mode = core.MixIndependent
	})
}
