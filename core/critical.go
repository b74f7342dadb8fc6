package core

// Critical runs fn as one uninterruptible section. Handlers called through
// Critical never interleave, and snapshots taken inside it are consistent.
// It must not be nested.
func Critical(fn func()) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn()
}
