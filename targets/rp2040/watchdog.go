//go:build rp2040

package main

import "machine"

// watchdogTimeoutMS covers a few lost frames: pulse inputs repeat every
// 20ms and iBus every 7ms
const watchdogTimeoutMS = 100

// Watchdog implements core.Watchdog. It stays off until the first
// completed output update.
type Watchdog struct {
	armed bool
}

// Feed arms the watchdog on first use and reloads it afterwards
func (w *Watchdog) Feed() {
	if w.armed {
		machine.Watchdog.Update()
		return
	}
	w.armed = true
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: watchdogTimeoutMS})
	machine.Watchdog.Start()
}
