//go:build linux

// Command dualdrive runs the motor controller on a Raspberry Pi class board.
// Pulse inputs and outputs go through the GPIO character device and the
// PWM block, iBus through a serial port.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dualdrive/core"
	"dualdrive/host/serial"
	"dualdrive/protocol"
)

var (
	ibusDevice = flag.String("ibus", "", "Serial device carrying iBus frames (empty = pulse inputs only)")
	wdtDevice  = flag.String("watchdog", watchdogDevice, "Watchdog device (empty = none)")
)

func main() {
	flag.Parse()
	cfg := buildConfig()
	core.SetDebugWriter(func(s string) { log.Println(s) })
	core.SetDebugEnabled(cfg.Debug)

	var ctl *core.Controller
	capture, err := NewCapture(func(ev core.CaptureEvent) {
		core.Critical(func() {
			if ctl != nil {
				ctl.HandleCapture(ev)
			}
		})
	})
	if err != nil {
		log.Fatalf("capture: %v", err)
	}
	defer capture.Close()

	pwm, err := NewMotorPWM(&cfg)
	if err != nil {
		log.Fatalf("pwm: %v", err)
	}
	defer pwm.Close()

	lines, err := NewLines(&cfg)
	if err != nil {
		log.Fatalf("gpio: %v", err)
	}
	defer lines.Close()

	board := core.Board{PWM: pwm, GPIO: lines, Capture: capture}
	wdt := &Watchdog{path: *wdtDevice}
	if *wdtDevice != "" {
		board.Watchdog = wdt
		defer wdt.Close()
	}

	// Handlers may fire as soon as the controller exists
	core.Critical(func() {
		ctl, err = core.NewController(cfg, board)
		if err == nil {
			ctl.Start()
		}
	})
	if err != nil {
		log.Fatalf("controller: %v", err)
	}
	if f := pwm.Frequency(); f != cfg.PWMFrequency() {
		log.Printf("pwm: %dHz requested, divider gives %dHz", cfg.PWMFrequency(), f)
	}
	log.Printf("dualdrive %s: mode %d, PWM %dHz, slots %v", protocol.Version, cfg.Mode, pwm.Frequency(), cfg.SerialSlots)

	if *ibusDevice != "" {
		port, err := serial.Open(serial.DefaultConfig(*ibusDevice))
		if err != nil {
			log.Fatalf("ibus: %v", err)
		}
		defer port.Close()
		go readSerial(port, ctl)
	}

	start := time.Now()
	now := func() uint32 { return uint32(time.Since(start) / time.Microsecond) }
	core.SetTime(now())
	row := make([]byte, 0, 64)
	core.ScheduleTimer(core.Periodic(core.GetTime(), core.TimerFromUS(core.StatusTickUS), func() {
		core.Critical(ctl.HandleTick)
		if core.IsDebugEnabled() {
			s := ctl.Snapshot()
			row = protocol.AppendTelemetry(row[:0], s.Telemetry())
			os.Stdout.Write(row)
		}
	}))
	if core.IsDebugEnabled() {
		os.Stdout.WriteString(protocol.TelemetryHeader + "\n")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case s := <-sig:
			if s == syscall.SIGUSR1 {
				core.DumpEventRing()
				continue
			}
			log.Printf("%v: stopping", s)
			core.Critical(ctl.Start)
			return
		case <-ticker.C:
			core.SetTime(now())
			core.ProcessTimers()
		}
	}
}

// readSerial feeds every received byte to the frame decoder
func readSerial(r io.Reader, ctl *core.Controller) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			core.Critical(func() { ctl.HandleSerialByte(b) })
		}
		if err != nil && !errors.Is(err, io.EOF) {
			log.Printf("ibus: %v", err)
			return
		}
	}
}
