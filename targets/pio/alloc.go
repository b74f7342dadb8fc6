//go:build rp2040

package pio

var (
	// PIO allocation tracking
	// RP2040 has 2 PIO blocks (PIO0, PIO1) with 4 state machines each.
	// The capture program is loaded at a fixed origin, so each channel
	// gets its own block.
	pioAllocations = [2]bool{}
)

// allocatePIO reserves a free PIO block
// Returns (pioNum, ok)
func allocatePIO() (uint8, bool) {
	for pioNum := range pioAllocations {
		if !pioAllocations[pioNum] {
			pioAllocations[pioNum] = true
			return uint8(pioNum), true
		}
	}

	// All PIO resources exhausted
	return 0, false
}
