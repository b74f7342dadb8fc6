//go:build rp2040

package main

import "dualdrive/core"

// tagOptions are appended by the buildcfg_*.go files, one per build tag
var tagOptions []func(*core.Config)

// buildConfig assembles the controller configuration for this build.
// Build with e.g. -tags indep,debug to change it.
func buildConfig() core.Config {
	cfg := core.DefaultConfig()
	for _, opt := range tagOptions {
		opt(&cfg)
	}
	return cfg
}
