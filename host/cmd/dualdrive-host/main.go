package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"dualdrive/host/ibus"
	"dualdrive/host/mcu"
	"dualdrive/host/serial"
	"dualdrive/protocol"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "ports":
		err = runPorts()
	case "monitor":
		err = runMonitor(ctx, args)
	case "send":
		err = runSend(ctx, args)
	case "console":
		err = runConsole(ctx, args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("dualdrive-host - bench tool for the dualdrive motor controller")
	fmt.Println()
	fmt.Println("Usage: dualdrive-host <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  ports      - List serial ports")
	fmt.Println("  monitor    - Print telemetry from a debug build")
	fmt.Println("  send       - Stream iBus frames with fixed channel values")
	fmt.Println("  console    - Drive the channels interactively")
	fmt.Println()
	fmt.Println("Run 'dualdrive-host <command> -h' for command flags.")
}

// linkFlags are shared by every command that opens a port
type linkFlags struct {
	device   *string
	baud     *int
	interval *time.Duration
	slots    [2]*uint
}

func addLinkFlags(fs *flag.FlagSet) *linkFlags {
	return &linkFlags{
		device:   fs.String("device", "/dev/ttyUSB0", "Serial device path"),
		baud:     fs.Int("baud", protocol.BaudRate, "Baud rate"),
		interval: fs.Duration("interval", ibus.DefaultInterval, "Frame interval"),
		slots: [2]*uint{
			fs.Uint("slot1", 3, "iBus slot read as channel 1"),
			fs.Uint("slot2", 4, "iBus slot read as channel 2"),
		},
	}
}

func (l *linkFlags) connect() (*mcu.MCU, error) {
	cfg := serial.DefaultConfig(*l.device)
	cfg.Baud = *l.baud

	m := mcu.NewMCU()
	fmt.Printf("Connecting to %s at %d baud...\n", cfg.Device, cfg.Baud)
	if err := m.ConnectWithConfig(cfg, *l.interval); err != nil {
		return nil, err
	}
	return m, nil
}

func (l *linkFlags) slotPair() ([2]uint8, error) {
	var s [2]uint8
	for i, p := range l.slots {
		if *p == 0 || *p > protocol.Channels {
			return s, fmt.Errorf("slot%d must be between 1 and %d", i+1, protocol.Channels)
		}
		s[i] = uint8(*p)
	}
	return s, nil
}

func runPorts() error {
	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

func runMonitor(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	link := addLinkFlags(fs)
	raw := fs.Bool("raw", false, "Print lines exactly as received")
	fs.Parse(args)

	m, err := link.connect()
	if err != nil {
		return err
	}
	defer m.Close()

	r, err := m.Telemetry()
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		m.Close()
	}()

	fmt.Println(protocol.TelemetryHeader)
	for {
		row, err := r.Next()
		if err != nil {
			if ctx.Err() != nil {
				fmt.Printf("\n%d rows, %d skipped\n", r.Rows(), r.Skipped())
				return nil
			}
			return fmt.Errorf("telemetry stream ended: %w", err)
		}
		if *raw {
			fmt.Println(r.Line())
			continue
		}
		fmt.Print(string(protocol.AppendTelemetry(nil, row)))
	}
}

func runSend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	link := addLinkFlags(fs)
	ch1 := fs.Uint("ch1", 1500, "Channel 1 value")
	ch2 := fs.Uint("ch2", 1500, "Channel 2 value")
	count := fs.Int("count", 0, "Number of frames to send (0 = until interrupted)")
	fs.Parse(args)

	slots, err := link.slotPair()
	if err != nil {
		return err
	}

	m, err := link.connect()
	if err != nil {
		return err
	}
	defer m.Close()

	tx := m.Transmitter()
	if err := tx.SetSlot(slots[0], uint16(*ch1)); err != nil {
		return err
	}
	if err := tx.SetSlot(slots[1], uint16(*ch2)); err != nil {
		return err
	}

	fmt.Printf("Sending slot %d=%d slot %d=%d every %v\n", slots[0], *ch1, slots[1], *ch2, *link.interval)
	if err := tx.Run(ctx, *count); err != nil {
		return err
	}
	fmt.Printf("%d frames sent\n", tx.Sent())
	return nil
}
