package core

import "testing"

func TestDutyCounts(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DutyCounts(cfg.PWMMin); got != 50 {
		t.Errorf("Expected min duty 50, got %d", got)
	}
	if got := cfg.DutyCounts(cfg.PWMMax); got != 500 {
		t.Errorf("Expected max duty 500, got %d", got)
	}
	if got := cfg.PWMPeriod(); got != 500 {
		t.Errorf("Expected period 500, got %d", got)
	}
	// 8MHz * 90 / 45000
	if got := cfg.PWMFrequency(); got != 16000 {
		t.Errorf("Expected 16000Hz, got %d", got)
	}
	cfg.PWMDivider = 2
	if got := cfg.PWMFrequency(); got != 4000 {
		t.Errorf("Expected 4000Hz with divider 2, got %d", got)
	}
}

func TestTransform(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		v    int16
		want MotorCommand
	}{
		{0, MotorCommand{}},
		{49, MotorCommand{}},
		{-49, MotorCommand{}},
		{50, MotorCommand{Duty: 50}},
		{-50, MotorCommand{Duty: 50}},
		{51, MotorCommand{Duty: 51, Forward: true}},
		{-51, MotorCommand{Duty: 51, Reverse: true}},
		{100, MotorCommand{Duty: 100, Forward: true}},
		{-300, MotorCommand{Duty: 300, Reverse: true}},
		{500, MotorCommand{Duty: 500, Forward: true}},
		{501, MotorCommand{Duty: 500, Forward: true}},
		{2595, MotorCommand{Duty: 500, Forward: true}},
		{-32768, MotorCommand{Duty: 500, Reverse: true}},
	}
	for _, tt := range tests {
		got := cfg.Transform(tt.v)
		if got != tt.want {
			t.Errorf("Transform(%d): expected %+v, got %+v", tt.v, tt.want, got)
		}
		if got.Forward && got.Reverse {
			t.Errorf("Transform(%d): forward and reverse both set", tt.v)
		}
	}
}

func TestTransformLinear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PWMMin = 20
	cfg.PWMMax = 80
	min, max := cfg.DutyCounts(cfg.PWMMin), cfg.DutyCounts(cfg.PWMMax)

	prev := uint16(0)
	for v := int16(DeadZone); v <= FullScale; v++ {
		d := cfg.Transform(v).Duty
		if d < prev {
			t.Fatalf("Duty decreased at %d: %d < %d", v, d, prev)
		}
		prev = d
	}
	if got := cfg.Transform(DeadZone).Duty; got != min {
		t.Errorf("Expected minimum %d at |v|=50, got %d", min, got)
	}
	if got := cfg.Transform(FullScale).Duty; got != max {
		t.Errorf("Expected maximum %d at |v|=500, got %d", max, got)
	}
}

func TestTransformSymmetric(t *testing.T) {
	cfg := DefaultConfig()
	for v := int16(0); v <= FullScale+10; v++ {
		pos, neg := cfg.Transform(v), cfg.Transform(-v)
		if pos.Duty != neg.Duty {
			t.Fatalf("Transform(%d) duty %d != Transform(%d) duty %d", v, pos.Duty, -v, neg.Duty)
		}
	}
	min := cfg.DutyCounts(cfg.PWMMin)
	if got := cfg.Transform(-DeadZone); got.Duty != min || got.Reverse {
		t.Errorf("Expected duty %d without reverse at -50, got %+v", min, got)
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name  string
		mode  MixMode
		a, b  int16
		wantA MotorCommand
		wantB MotorCommand
	}{
		{"differential centered", MixDifferential, 0, 0, MotorCommand{}, MotorCommand{}},
		{"differential throttle", MixDifferential, 100, 0,
			MotorCommand{Duty: 100, Forward: true}, MotorCommand{Duty: 100, Forward: true}},
		{"differential spin", MixDifferential, 0, 200,
			MotorCommand{Duty: 200, Forward: true}, MotorCommand{Duty: 200, Reverse: true}},
		{"differential dead zone", MixDifferential, 30, 15, MotorCommand{}, MotorCommand{}},
		{"differential saturation", MixDifferential, 700, 700,
			MotorCommand{Duty: 500, Forward: true}, MotorCommand{}},
		{"independent", MixIndependent, 100, -200,
			MotorCommand{Duty: 100, Forward: true}, MotorCommand{Duty: 200, Reverse: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			a, b := cfg.Mix(tt.a, tt.b)
			if a != tt.wantA {
				t.Errorf("Motor A: expected %+v, got %+v", tt.wantA, a)
			}
			if b != tt.wantB {
				t.Errorf("Motor B: expected %+v, got %+v", tt.wantB, b)
			}
		})
	}
}

func TestSat16(t *testing.T) {
	if got := sat16(40000); got != 32767 {
		t.Errorf("Expected 32767, got %d", got)
	}
	if got := sat16(-40000); got != -32768 {
		t.Errorf("Expected -32768, got %d", got)
	}
	if got := sat16(-12); got != -12 {
		t.Errorf("Expected -12, got %d", got)
	}
}
