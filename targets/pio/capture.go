//go:build rp2040

// Package pio measures RC pulse trains with the RP2040 PIO blocks.
// Each channel runs a state machine that times the high and low phase of
// every period at 1us resolution and pushes both counts as one word.
package pio

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"dualdrive/core"
)

// ErrNoPIO is returned when both PIO blocks are in use
var ErrNoPIO = errors.New("pio: no free PIO block")

const captureOrigin = 0 // Load at offset 0 for correct jump addresses

// buildCaptureProgram times the high and low phase of pin using AssemblerV0.
// X counts down from 0xFFFFFFFF, two cycles per count.
func buildCaptureProgram(pin machine.Pin) []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.WaitGPIO(false, uint8(pin)).Encode(), // 0: wait 0 gpio pin
		asm.WaitGPIO(true, uint8(pin)).Encode(),  // 1: wait 1 gpio pin
		// .wrap_target
		asm.MovInvert(rp2pio.MovDestX, rp2pio.MovSrcNull).Encode(), // 2: mov x, ~null
		asm.Jmp(4, rp2pio.JmpXNZeroDec).Encode(),                   // 3: jmp x--, 4
		asm.Jmp(3, rp2pio.JmpPinInput).Encode(),                    // 4: jmp pin, 3 (still high)
		asm.In(rp2pio.InSrcX, 16).Encode(),                         // 5: in x, 16
		asm.MovInvert(rp2pio.MovDestX, rp2pio.MovSrcNull).Encode(), // 6: mov x, ~null
		asm.Jmp(9, rp2pio.JmpPinInput).Encode(),                    // 7: jmp pin, 9 (rising edge)
		asm.Jmp(7, rp2pio.JmpXNZeroDec).Encode(),                   // 8: jmp x--, 7
		asm.In(rp2pio.InSrcX, 16).Encode(),                         // 9: in x, 16
		asm.Push(false, false).Encode(),                            // 10: push noblock
		// .wrap
	}
}

const (
	captureWrapTarget = 2
	captureWrap       = 10
)

// Capture clock: 125MHz / 62.5 = 2MHz, one count per microsecond
const (
	clkDivInt  = 62
	clkDivFrac = 128
)

// channel is one pulse input
type channel struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	pioNum uint8

	offset uint8
	cfg    rp2pio.StateMachineConfig

	rise uint16 // synthesized rising edge of the next pulse
}

// Capture owns the state machines of both RC inputs.
// Pulse edges are rebuilt from the measured phase lengths on a
// per-channel 16-bit microsecond clock.
type Capture struct {
	ch       [2]channel
	frac     int16
	disabled bool
}

// New claims one PIO block per input pin and starts measuring
func New(pin1, pin2 machine.Pin) (*Capture, error) {
	c := &Capture{frac: clkDivFrac}
	for i, pin := range [2]machine.Pin{pin1, pin2} {
		if err := c.ch[i].init(pin, c.frac); err != nil {
			return nil, err
		}
	}
	for i := range c.ch {
		c.ch[i].sm.SetEnabled(true)
	}
	return c, nil
}

func (ch *channel) init(pin machine.Pin, frac int16) error {
	pioNum, ok := allocatePIO()
	if !ok {
		return ErrNoPIO
	}
	ch.pioNum = pioNum
	if pioNum == 0 {
		ch.pio = rp2pio.PIO0
	} else {
		ch.pio = rp2pio.PIO1
	}
	ch.sm = ch.pio.StateMachine(0)
	ch.pin = pin

	// Claim the state machine first
	ch.sm.TryClaim()

	program := buildCaptureProgram(pin)
	offset, err := ch.pio.AddProgram(program, captureOrigin)
	if err != nil {
		return err
	}

	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	ch.offset = offset
	ch.cfg = rp2pio.DefaultStateMachineConfig()
	ch.cfg.SetJmpPin(pin)
	// Shift left, no autopush: first count ends up in the high half
	ch.cfg.SetInShift(false, false, 32)
	ch.cfg.SetWrap(offset+captureWrap, offset+captureWrapTarget)
	ch.cfg.SetClkDivIntFrac(clkDivInt, uint8(frac))

	ch.sm.Init(offset, ch.cfg)
	return nil
}

// restart reloads the configuration. The program waits for the next full
// pulse, so the pulse in flight is lost.
func (ch *channel) restart(frac uint8) {
	ch.sm.SetEnabled(false)
	ch.cfg.SetClkDivIntFrac(clkDivInt, frac)
	ch.sm.Init(ch.offset, ch.cfg)
	ch.sm.SetEnabled(true)
}

// Poll drains every pending measurement and calls fn once per completed
// pulse. Call it from the main loop with fn entering core.Critical.
func (c *Capture) Poll(fn func(core.CaptureEvent)) {
	if c.disabled {
		return
	}
	for i := range c.ch {
		ch := &c.ch[i]
		for !ch.sm.IsRxFIFOEmpty() {
			w := ch.sm.RxGet()
			high := uint16(^(w >> 16))
			low := uint16(^w)

			var ev core.CaptureEvent
			ev.Ch[i] = core.EdgeCapture{Rise: ch.rise, Fall: ch.rise + high, Valid: true}
			ev.RiseFresh = i == 0
			ch.rise += high + low
			fn(ev)
		}
	}
}

// Trim nudges the capture clock divider by 1/256 per step. A positive
// step means periods measure long, so the divider grows.
func (c *Capture) Trim(step int8) {
	f := c.frac + int16(step)
	if f < 0 || f > 255 || c.disabled {
		return
	}
	c.frac = f
	for i := range c.ch {
		c.ch[i].restart(uint8(f))
	}
}

// Divider returns the current clock divider as (integer, 1/256 fraction)
func (c *Capture) Divider() (uint16, uint8) {
	return clkDivInt, uint8(c.frac)
}

// DisableCapture stops both state machines for good
func (c *Capture) DisableCapture() {
	c.disabled = true
	for i := range c.ch {
		c.ch[i].sm.SetEnabled(false)
		c.ch[i].sm.ClearFIFOs()
	}
}
