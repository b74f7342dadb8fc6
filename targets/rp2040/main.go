//go:build rp2040

package main

import (
	"machine"
	"strconv"
	"time"

	"dualdrive/core"
	"dualdrive/protocol"
	"dualdrive/targets/pio"
)

var (
	ctl  *core.Controller
	uart *machine.UART

	// Handler arguments, set right before the matching closure runs
	pendingCapture core.CaptureEvent
	pendingByte    byte

	// Closures are built once so the main loop never allocates
	handleCapture = func() { ctl.HandleCapture(pendingCapture) }
	handleByte    = func() { ctl.HandleSerialByte(pendingByte) }
	handleTick    = func() { ctl.HandleTick() }

	// Telemetry row scratch buffer
	row []byte

	capture  *pio.Capture
	lastFrac uint8
)

func main() {
	// Disable watchdog on boot to clear any previous state;
	// the first output update arms it again
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	cfg := buildConfig()

	uart, err = initUART()
	if err != nil {
		fatal()
	}
	core.SetDebugWriter(func(s string) { writeLine(uart, s) })
	core.SetDebugEnabled(cfg.Debug)

	capture, err = pio.New(pinCH1, pinCH2)
	if err != nil {
		fatal()
	}
	pwm, err := NewMotorPWM(&cfg)
	if err != nil {
		fatal()
	}

	board := core.Board{
		PWM:      pwm,
		GPIO:     NewOutputs(),
		Watchdog: &Watchdog{},
		Capture:  capture,
	}
	if cfg.CalibrationEnabled() {
		board.Trimmer = capture
	}
	ctl, err = core.NewController(cfg, board)
	if err != nil {
		fatal()
	}
	ctl.Start()

	if core.IsDebugEnabled() {
		core.InitAsyncDebug()
		uart.Write(newline)
		writeLine(uart, protocol.TelemetryHeader)
		row = make([]byte, 0, 64)
		_, lastFrac = capture.Divider()
	}

	UpdateSystemTime()
	core.ScheduleTimer(core.Periodic(core.GetTime(), core.TimerFromUS(core.StatusTickUS), func() {
		core.Critical(handleTick)
		if core.IsDebugEnabled() {
			report()
		}
	}))

	// Main loop
	for {
		UpdateSystemTime()

		capture.Poll(dispatchCapture)

		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			pendingByte = b
			core.Critical(handleByte)
		}

		// Status tick and telemetry
		core.ProcessTimers()

		// Yield to other goroutines
		time.Sleep(10 * time.Microsecond)
	}
}

func dispatchCapture(ev core.CaptureEvent) {
	pendingCapture = ev
	core.Critical(handleCapture)
}

// report writes one telemetry row from a consistent snapshot and notes
// divider changes made by the calibration loop
func report() {
	s := ctl.Snapshot()
	row = protocol.AppendTelemetry(row[:0], s.Telemetry())
	uart.Write(row)

	if n, frac := capture.Divider(); frac != lastFrac {
		lastFrac = frac
		core.DebugAsync("[PIO] clkdiv=" + strconv.Itoa(int(n)) + "+" + strconv.Itoa(int(frac)) + "/256")
	}
}

// fatal blinks the LED rapidly forever
func fatal() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
