//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// handlerMu stands in for the interrupt controller on regular Go. The Linux
// runtime delivers edges, serial bytes and ticks from separate goroutines,
// so they are serialised here to keep handlers run-to-completion.
var handlerMu sync.Mutex

// disableInterrupts enters the critical section
func disableInterrupts() State {
	handlerMu.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	handlerMu.Unlock()
}
