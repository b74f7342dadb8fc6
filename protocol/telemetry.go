package protocol

import (
	"errors"
	"strconv"
	"strings"
)

// TelemetryHeader is printed once before the telemetry rows
const TelemetryHeader = " CH1  CH2     IN1  IN2    PWM1 PWM2    FWD  REV"

// ErrTelemetryFormat indicates a line that is not a telemetry row
var ErrTelemetryFormat = errors.New("telemetry: malformed line")

// Telemetry is one diagnostic row: raw channel values, offsets,
// PWM duty counts and direction flags of both motors
type Telemetry struct {
	Raw     [2]uint16
	Offset  [2]int16
	Duty    [2]uint16
	Forward [2]bool
	Reverse [2]bool
}

// AppendTelemetry appends the row for t, terminated by "\n", to dst.
// It does not allocate when dst has room for the row.
func AppendTelemetry(dst []byte, t Telemetry) []byte {
	dst = appendUint(dst, t.Raw[0])
	dst = append(dst, ' ')
	dst = appendUint(dst, t.Raw[1])
	dst = append(dst, "    "...)
	dst = appendInt(dst, t.Offset[0])
	dst = append(dst, ' ')
	dst = appendInt(dst, t.Offset[1])
	dst = append(dst, "    "...)
	dst = appendUint(dst, t.Duty[0])
	dst = append(dst, ' ')
	dst = appendUint(dst, t.Duty[1])
	dst = append(dst, "    "...)
	dst = appendFlag(dst, t.Forward[0])
	dst = append(dst, ' ')
	dst = appendFlag(dst, t.Forward[1])
	dst = append(dst, "  "...)
	dst = appendFlag(dst, t.Reverse[0])
	dst = append(dst, ' ')
	dst = appendFlag(dst, t.Reverse[1])
	return append(dst, '\n')
}

// ParseTelemetry parses a row produced by AppendTelemetry
func ParseTelemetry(line string) (Telemetry, error) {
	var t Telemetry
	f := strings.Fields(line)
	if len(f) != 10 {
		return t, ErrTelemetryFormat
	}
	for i := 0; i < 2; i++ {
		raw, err := strconv.ParseUint(f[i], 10, 16)
		if err != nil {
			return t, ErrTelemetryFormat
		}
		off, err := strconv.ParseInt(f[2+i], 10, 16)
		if err != nil {
			return t, ErrTelemetryFormat
		}
		duty, err := strconv.ParseUint(f[4+i], 10, 16)
		if err != nil {
			return t, ErrTelemetryFormat
		}
		fwd, err := parseFlag(f[6+i])
		if err != nil {
			return t, err
		}
		rev, err := parseFlag(f[8+i])
		if err != nil {
			return t, err
		}
		t.Raw[i] = uint16(raw)
		t.Offset[i] = int16(off)
		t.Duty[i] = uint16(duty)
		t.Forward[i] = fwd
		t.Reverse[i] = rev
	}
	return t, nil
}

// appendUint and appendInt format into a stack scratch buffer
func appendUint(dst []byte, v uint16) []byte {
	var scratch [6]byte
	return appendPadded(dst, strconv.AppendUint(scratch[:0], uint64(v), 10))
}

func appendInt(dst []byte, v int16) []byte {
	var scratch [6]byte
	return appendPadded(dst, strconv.AppendInt(scratch[:0], int64(v), 10))
}

// appendPadded right-aligns s in a 4 character field
func appendPadded(dst, s []byte) []byte {
	for i := len(s); i < 4; i++ {
		dst = append(dst, ' ')
	}
	return append(dst, s...)
}

func appendFlag(dst []byte, b bool) []byte {
	if b {
		return append(dst, '1')
	}
	return append(dst, '0')
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, ErrTelemetryFormat
}
