// Package monitor reads the diagnostic telemetry stream of a debug build
package monitor

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"dualdrive/protocol"
)

// Reader extracts telemetry rows from a line stream. The header line,
// blank lines and event ring dumps are skipped.
type Reader struct {
	scanner *bufio.Scanner
	rows    uint64
	skipped uint64
	last    string
}

// NewReader wraps r
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next telemetry row, or io.EOF at the end of the stream
func (r *Reader) Next() (protocol.Telemetry, error) {
	for r.scanner.Scan() {
		line := strings.TrimRight(r.scanner.Text(), "\r")
		r.last = line
		if IsHeader(line) || strings.TrimSpace(line) == "" {
			continue
		}
		t, err := protocol.ParseTelemetry(line)
		if errors.Is(err, protocol.ErrTelemetryFormat) {
			r.skipped++
			continue
		}
		r.rows++
		return t, nil
	}
	if err := r.scanner.Err(); err != nil {
		return protocol.Telemetry{}, err
	}
	return protocol.Telemetry{}, io.EOF
}

// Line returns the raw text of the line last consumed
func (r *Reader) Line() string {
	return r.last
}

// Rows returns the number of telemetry rows parsed
func (r *Reader) Rows() uint64 {
	return r.rows
}

// Skipped returns the number of unparseable lines
func (r *Reader) Skipped() uint64 {
	return r.skipped
}

// IsHeader reports whether line is the column header
func IsHeader(line string) bool {
	return strings.TrimSpace(line) == strings.TrimSpace(protocol.TelemetryHeader)
}
