//go:build linux

package main

import (
	"testing"

	"dualdrive/core"
)

func TestPWMClock(t *testing.T) {
	tests := []struct {
		want uint32
		got  uint32
	}{
		{9600000, 9600000},  // exact divider 2
		{8000000, 9600000},  // floors to divider 2
		{4800000, 4800000},  // exact divider 4
		{19200000, 9600000}, // divider clamps to 2
		{1000, 4688},        // divider clamps to 4095
		{0, 4688},
	}
	for _, tt := range tests {
		if got := pwmClock(tt.want); got != tt.got {
			t.Errorf("pwmClock(%d): expected %d, got %d", tt.want, tt.got, got)
		}
	}
}

func TestDefaultPWMFrequency(t *testing.T) {
	cfg := core.DefaultConfig()
	d := &MotorPWM{period: uint32(cfg.PWMPeriod())}
	d.clock = pwmClock(cfg.PWMFrequency() * d.period)
	if got := d.Frequency(); got != 19200 {
		t.Errorf("Expected 19200Hz from the default config, got %d", got)
	}
}
