// Package protocol implements the wire formats spoken by the driver:
// the FlySky iBus servo frame and the diagnostic telemetry line
package protocol

// Version represents the dualdrive firmware version
const Version = "0.3.0"

// iBus frame layout
const (
	Header1 = 0x20
	Header2 = 0x40

	FrameSize  = 32 // header (2) + 14 channel words + checksum word
	FrameWords = 15 // words after the header, the last one is the checksum
	Channels   = 14

	// ChecksumSeed is 0xFFFF with the two header bytes already subtracted
	ChecksumSeed = 0xFFFF - Header1 - Header2

	// ChannelMask keeps the 12 value bits of a channel word
	ChannelMask = 0x0FFF

	// BaudRate is the iBus line rate
	BaudRate = 115200

	// FramePeriodMS is the usual transmit interval of a receiver
	FramePeriodMS = 7
)
