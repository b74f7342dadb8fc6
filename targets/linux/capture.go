//go:build linux

package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"dualdrive/core"
)

// Capture timestamps both edges of the two RC inputs with gpiocdev edge
// events. Kernel timestamps are truncated to a 16-bit microsecond counter,
// the width of the capture registers the core was designed around.
type Capture struct {
	lines    [2]*gpiocdev.Line
	rise     [2]uint16
	high     [2]bool
	fresh    bool // channel 1 latched a rising edge since its last pulse
	disabled atomic.Bool
	deliver  func(core.CaptureEvent)
}

// NewCapture requests both input lines. deliver runs on the gpiocdev
// event goroutine and is expected to enter core.Critical.
func NewCapture(deliver func(core.CaptureEvent)) (*Capture, error) {
	c := &Capture{deliver: deliver}
	for i, offset := range [2]int{lineCH1, lineCH2} {
		ch := i
		l, err := gpiocdev.RequestLine(chipName, offset,
			gpiocdev.WithPullUp,
			gpiocdev.WithBothEdges,
			gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) { c.handleEdge(ch, evt) }))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to request %s:%d: %w", chipName, offset, err)
		}
		c.lines[i] = l
	}
	return c, nil
}

func (c *Capture) handleEdge(ch int, evt gpiocdev.LineEvent) {
	if c.disabled.Load() {
		return
	}
	ts := stamp16(evt.Timestamp)
	if evt.Type == gpiocdev.LineEventRisingEdge {
		c.rise[ch] = ts
		c.high[ch] = true
		if ch == 0 {
			c.fresh = true
		}
		return
	}
	if !c.high[ch] {
		// Falling edge without a rising edge seen since start
		return
	}
	c.high[ch] = false

	var ev core.CaptureEvent
	ev.Ch[ch] = core.EdgeCapture{Rise: c.rise[ch], Fall: ts, Valid: true}
	if ch == 0 {
		ev.RiseFresh = c.fresh
		c.fresh = false
	}
	c.deliver(ev)
}

// stamp16 truncates a kernel timestamp to the 16-bit capture clock
func stamp16(ts time.Duration) uint16 {
	return uint16(ts / (time.Second / core.CaptureFreq))
}

// DisableCapture drops every further edge. The lines stay requested
// until Close, since closing waits for the handler goroutine which may
// be the caller.
func (c *Capture) DisableCapture() {
	c.disabled.Store(true)
}

// Close releases both lines
func (c *Capture) Close() {
	for _, l := range c.lines {
		if l != nil {
			l.Close()
		}
	}
}
