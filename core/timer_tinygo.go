//go:build tinygo

package core

import "runtime/volatile"

// getSystemTicks returns the current system ticks
func getSystemTicks() uint32 {
	return volatile.LoadUint32(&systemTicks)
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	volatile.StoreUint32(&systemTicks, ticks)
}
