package core

// Line identifies a discrete output line
type Line uint8

const (
	LineFWD1 Line = iota
	LineFWD2
	LineREV1
	LineREV2
	LineLED
	numLines
)

// GPIODriver is the abstract digital output interface that core code uses.
// Levels passed to SetLine are electrical: polarity is already applied.
type GPIODriver interface {
	SetLine(line Line, high bool)
}

// activeLow returns the configured polarity of a line
func (p *Polarity) activeLow(line Line) bool {
	switch line {
	case LineFWD1:
		return p.FWD1
	case LineFWD2:
		return p.FWD2
	case LineREV1:
		return p.REV1
	case LineREV2:
		return p.REV2
	case LineLED:
		return p.LED
	}
	return false
}

// Level converts a logical line state into the electrical level
func (p *Polarity) Level(line Line, active bool) bool {
	return active != p.activeLow(line)
}
