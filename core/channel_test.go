package core

import "testing"

func TestDecodePulse(t *testing.T) {
	tests := []struct {
		name      string
		armed     uint16 // raw value before the sample, 0 = disarmed
		width     uint16
		want      int16
		wantArmed bool
	}{
		{"disarmed centered", 0, 1500, 0, true},
		{"disarmed arm band low edge", 0, 1450, -50, true},
		{"disarmed arm band high edge", 0, 1550, 50, true},
		{"disarmed below arm band", 0, 1449, 0, false},
		{"disarmed above arm band", 0, 1551, 0, false},
		{"disarmed too short", 0, 700, 0, false},
		{"armed forward", 1500, 1600, 100, true},
		{"armed reverse", 1500, 1000, -500, true},
		{"armed window low edge", 1500, 800, -700, true},
		{"armed window high edge", 1500, 2200, 700, true},
		{"armed too short", 1500, 799, 0, false},
		{"armed too long", 1500, 2201, 0, false},
		{"armed zero width", 1500, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Channel
			if tt.armed != 0 {
				c.DecodePulse(tt.armed)
			}
			got := c.DecodePulse(tt.width)
			if got != tt.want {
				t.Errorf("Expected offset %d, got %d", tt.want, got)
			}
			if c.Armed() != tt.wantArmed {
				t.Errorf("Expected armed=%v, got %v", tt.wantArmed, c.Armed())
			}
			if !c.Armed() && c.Offset() != 0 {
				t.Errorf("Disarmed channel kept offset %d", c.Offset())
			}
		})
	}
}

func TestDecodePulseStable(t *testing.T) {
	var c Channel
	c.DecodePulse(1500)
	for i := 0; i < 10; i++ {
		if got := c.DecodePulse(1720); got != 220 {
			t.Fatalf("Iteration %d: expected 220, got %d", i, got)
		}
	}
	if c.Raw() != 1720 {
		t.Errorf("Expected raw 1720, got %d", c.Raw())
	}
}

func TestDecodeEdgesWrap(t *testing.T) {
	var c Channel
	// Rising edge just before the counter wraps
	rise := uint16(65000)
	fall := rise + 1510
	if fall > rise {
		t.Fatalf("Test setup: fall %d did not wrap", fall)
	}
	if got := c.DecodeEdges(rise, fall); got != 10 {
		t.Errorf("Expected offset 10 across wrap, got %d", got)
	}
}

func TestRearmAfterSignalLoss(t *testing.T) {
	var c Channel
	c.DecodePulse(1500)
	c.DecodePulse(1800)

	c.DecodePulse(700)
	if c.Armed() {
		t.Fatal("Channel still armed after 700us pulse")
	}
	if got := c.DecodePulse(1600); got != 0 || c.Armed() {
		t.Errorf("Non-centered pulse accepted while disarmed: offset %d", got)
	}
	if got := c.DecodePulse(1520); got != 20 || !c.Armed() {
		t.Errorf("Centered pulse did not re-arm: offset %d armed %v", got, c.Armed())
	}
	if got := c.DecodePulse(1600); got != 100 {
		t.Errorf("Expected 100 after re-arm, got %d", got)
	}
}

func TestAcceptSerial(t *testing.T) {
	var c Channel

	// No validity window, but the arm band still applies
	if got := c.AcceptSerial(4095); got != 0 || c.Armed() {
		t.Errorf("4095 armed a disarmed channel: offset %d", got)
	}
	if got := c.AcceptSerial(1500); got != 0 || !c.Armed() {
		t.Errorf("1500 did not arm: offset %d", got)
	}
	if got := c.AcceptSerial(4095); got != 2595 {
		t.Errorf("Expected offset 2595 for 4095, got %d", got)
	}
	if got := c.AcceptSerial(0); got != 0 || c.Armed() {
		t.Errorf("Zero value did not disarm: offset %d armed %v", got, c.Armed())
	}
}
