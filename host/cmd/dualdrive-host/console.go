package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/shlex"

	"dualdrive/host/ibus"
	"dualdrive/protocol"
)

func runConsole(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	link := addLinkFlags(fs)
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

	// Frames keep flowing while the operator types, otherwise the board's
	// watchdog would reset it
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- tx.Run(runCtx, 0) }()

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	err = console(os.Stdin, os.Stdout, tx, slots)
	cancel()
	if txErr := <-errc; txErr != nil {
		return txErr
	}
	return err
}

// console runs the interactive loop until quit or end of input
func console(in io.Reader, out io.Writer, tx *ibus.Transmitter, slots [2]uint8) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := execute(out, tx, slots, scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

// execute runs one console line
func execute(out io.Writer, tx *ibus.Transmitter, slots [2]uint8, line string) (bool, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return false, fmt.Errorf("failed to parse line: %w", err)
	}
	if len(parts) == 0 {
		return false, nil
	}

	switch parts[0] {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		printHelp(out)

	case "set":
		if len(parts) != 3 {
			return false, fmt.Errorf("usage: set <slot> <value>")
		}
		slot, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return false, fmt.Errorf("bad slot %q: %w", parts[1], err)
		}
		value, err := parseValue(parts[2])
		if err != nil {
			return false, err
		}
		if err := tx.SetSlot(uint8(slot), value); err != nil {
			return false, err
		}

	case "ch1", "ch2":
		if len(parts) != 2 {
			return false, fmt.Errorf("usage: %s <value>", parts[0])
		}
		value, err := parseValue(parts[1])
		if err != nil {
			return false, err
		}
		slot := slots[0]
		if parts[0] == "ch2" {
			slot = slots[1]
		}
		if err := tx.SetSlot(slot, value); err != nil {
			return false, err
		}

	case "center":
		tx.Center()

	case "show":
		values := tx.Values()
		fmt.Fprintf(out, "ch1 (slot %d) = %d\n", slots[0], values.Slot(slots[0]))
		fmt.Fprintf(out, "ch2 (slot %d) = %d\n", slots[1], values.Slot(slots[1]))
		fmt.Fprintf(out, "frames sent = %d\n", tx.Sent())

	default:
		return false, fmt.Errorf("unknown command: %s (type 'help' for available commands)", parts[0])
	}
	return false, nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "\nAvailable commands:")
	fmt.Fprintln(out, "  help              - Show this help message")
	fmt.Fprintln(out, "  set <slot> <val>  - Set any iBus slot (1-14)")
	fmt.Fprintln(out, "  ch1 <val>         - Set the slot read as channel 1")
	fmt.Fprintln(out, "  ch2 <val>         - Set the slot read as channel 2")
	fmt.Fprintln(out, "  center            - Center every slot")
	fmt.Fprintln(out, "  show              - Print the current channel values")
	fmt.Fprintln(out, "  quit/exit/q       - Exit the program")
	fmt.Fprintln(out)
}

// parseValue reads a channel value; iBus words carry 12 bits
func parseValue(s string) (uint16, error) {
	value, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %w", s, err)
	}
	if value > protocol.ChannelMask {
		return 0, fmt.Errorf("value %d does not fit in 12 bits", value)
	}
	return uint16(value), nil
}
