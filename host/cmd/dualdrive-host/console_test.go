package main

import (
	"bytes"
	"strings"
	"testing"

	"dualdrive/host/ibus"
)

func TestConsoleCommands(t *testing.T) {
	var frames bytes.Buffer
	tx := ibus.NewTransmitter(&frames, 0)
	slots := [2]uint8{3, 4}

	in := strings.NewReader("set 5 1700\nch1 1600\n'ch2' \"1400\"\nshow\nbogus\nquit\nset 5 1000\n")
	var out bytes.Buffer
	if err := console(in, &out, tx, slots); err != nil {
		t.Fatalf("console failed: %v", err)
	}

	v := tx.Values()
	if v.Slot(5) != 1700 || v.Slot(3) != 1600 || v.Slot(4) != 1400 {
		t.Errorf("Unexpected values: slot3=%d slot4=%d slot5=%d", v.Slot(3), v.Slot(4), v.Slot(5))
	}
	text := out.String()
	if !strings.Contains(text, "ch1 (slot 3) = 1600") {
		t.Errorf("show output missing channel 1: %q", text)
	}
	if !strings.Contains(text, "unknown command: bogus") {
		t.Errorf("Unknown command not reported: %q", text)
	}
	if !strings.Contains(text, "Goodbye!") {
		t.Errorf("quit not handled: %q", text)
	}
}

func TestExecuteErrors(t *testing.T) {
	tx := ibus.NewTransmitter(&bytes.Buffer{}, 0)
	slots := [2]uint8{3, 4}
	tests := []string{
		"set 3",
		"set x 1500",
		"set 3 5000",
		"set 0 1500",
		"ch1",
		"ch1 \"unterminated",
		"ch1 4096",
		"ch2 5000",
	}
	for _, line := range tests {
		if _, err := execute(&bytes.Buffer{}, tx, slots, line); err == nil {
			t.Errorf("%q: expected an error", line)
		}
	}
	if v := tx.Values(); v.Slot(3) != 1500 || v.Slot(4) != 1500 {
		t.Errorf("Rejected commands changed the frame: %d/%d", v.Slot(3), v.Slot(4))
	}
}

func TestExecuteCenter(t *testing.T) {
	tx := ibus.NewTransmitter(&bytes.Buffer{}, 0)
	slots := [2]uint8{3, 4}
	execute(&bytes.Buffer{}, tx, slots, "set 3 2000")
	if quit, err := execute(&bytes.Buffer{}, tx, slots, "  center  "); err != nil || quit {
		t.Fatalf("center: quit %v err %v", quit, err)
	}
	if tx.Values().Slot(3) != 1500 {
		t.Errorf("Expected slot 3 centered, got %d", tx.Values().Slot(3))
	}
}
