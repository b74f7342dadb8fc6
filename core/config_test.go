package core

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if !cfg.CalibrationEnabled() {
		t.Error("Expected calibration on the internal clock")
	}
	cfg.ClockSource = ClockExternal
	if cfg.CalibrationEnabled() {
		t.Error("Expected calibration off on an external clock")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   []error
	}{
		{"min equals max", func(c *Config) { c.PWMMin = 50; c.PWMMax = 50 }, []error{ErrDutyRange}},
		{"max above 100", func(c *Config) { c.PWMMax = 101 }, []error{ErrDutyRange}},
		{"divider", func(c *Config) { c.PWMDivider = 16 }, []error{ErrPWMDivider}},
		{"clock", func(c *Config) { c.ClockHz = 0 }, []error{ErrClock}},
		{"slot range", func(c *Config) { c.SerialSlots = [2]uint8{15, 4} }, []error{ErrSerialSlot}},
		{"slot duplicate", func(c *Config) { c.SerialSlots = [2]uint8{4, 4} }, []error{ErrSerialSlot}},
		{"mode", func(c *Config) { c.Mode = 7 }, []error{ErrMixMode}},
		{"several", func(c *Config) {
			c.PWMDivider = 20
			c.ClockHz = 0
		}, []error{ErrPWMDivider, ErrClock}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected an error")
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Expected %v in %v", want, err)
				}
			}
		})
	}
}

func TestConfigSlotsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SerialSlots = [2]uint8{0, 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Unused serial slots rejected: %v", err)
	}
}
