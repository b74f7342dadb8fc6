package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// DecoderEvent captures a decoder or calibration event for post-mortem analysis
type DecoderEvent struct {
	EventType uint8  // Event type code
	Channel   uint8  // Channel index, where relevant
	Clock     uint32 // System clock at event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtFrameOK         = 1 // checksummed frame applied
	EvtFrameDropped    = 2 // checksum mismatch
	EvtTrimUp          = 3 // oscillator trimmed +1 (v1 = error, v2 = net trim)
	EvtTrimDown        = 4 // oscillator trimmed -1
	EvtDisarm          = 5 // channel lost signal (v1 = raw value)
	EvtCaptureDisabled = 6 // serial input took over
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Event ring buffer (non-blocking, written from handlers)
	eventRing     [EventRingSize]DecoderEvent
	eventRingHead uint8

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, stdout, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker()
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer
// Blocks if debug is enabled (use DebugAsync for non-blocking)
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	if !debugEnabled {
		return
	}
	if debugChan == nil {
		DebugPrintln(msg)
		return
	}
	select {
	case debugChan <- msg:
	default:
		// Channel full, drop message (non-blocking)
	}
}

// RecordEvent captures an event in the ring buffer
// This is always non-blocking and allocation free
func RecordEvent(eventType, channel uint8, value1, value2 uint32) {
	idx := eventRingHead
	eventRing[idx] = DecoderEvent{
		EventType: eventType,
		Channel:   channel,
		Clock:     GetTime(),
		Value1:    value1,
		Value2:    value2,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []DecoderEvent {
	out := make([]DecoderEvent, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.EventType != 0 {
			out = append(out, evt)
		}
	}
	return out
}

// DumpEventRing outputs the event ring buffer
// This should be called from the main loop, never from a handler
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.EventType {
		case EvtFrameOK:
			name = "FRAME_OK"
		case EvtFrameDropped:
			name = "FRAME_DROP"
		case EvtTrimUp:
			name = "TRIM_UP"
		case EvtTrimDown:
			name = "TRIM_DOWN"
		case EvtDisarm:
			name = "DISARM"
		case EvtCaptureDisabled:
			name = "CAPTURE_OFF"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[EVENTS] " + name +
			" ch=" + itoa(int(evt.Channel)) +
			" clock=" + utoa(evt.Clock) +
			" v1=" + itoa(int(int32(evt.Value1))) +
			" v2=" + itoa(int(int32(evt.Value2))))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = DecoderEvent{}
	}
	eventRingHead = 0
}
