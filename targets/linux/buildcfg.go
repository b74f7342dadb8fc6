//go:build linux

package main

import "dualdrive/core"

// tagOptions are appended by the buildcfg_*.go files, one per build tag
var tagOptions []func(*core.Config)

// buildConfig assembles the controller configuration for this build.
// Edge timestamps come from the kernel's monotonic clock, which has no
// trim register, so calibration is always off.
func buildConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.ClockSource = core.ClockExternal
	for _, opt := range tagOptions {
		opt(&cfg)
	}
	return cfg
}
