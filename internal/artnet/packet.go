package artnet

import "encoding/binary"

const (
	// DefaultPort is the UDP port registered for Art-Net.
	DefaultPort = 6454

	// packetID is the fixed 8-byte identifier opening every Art-Net packet.
	packetID = "Art-Net\x00"

	// opcodeDMX identifies an ArtDMX frame, little-endian on the wire.
	opcodeDMX = 0x5000

	// headerLength is the offset where the DMX payload begins.
	headerLength = 18

	// maxDMXChannels is the channel count of a full DMX512 universe.
	maxDMXChannels = 512
)

// Decoder extracts a 16-bit value from ArtDMX packets. ChannelHigh supplies
// the coarse byte and ChannelLow the fine byte; both are 1-based DMX channel
// numbers.
type Decoder struct {
	// Universe is the Art-Net universe to listen to (SubUni + Net bytes).
	Universe uint16
	// ChannelHigh is the 1-based channel carrying the most significant byte.
	ChannelHigh int
	// ChannelLow is the 1-based channel carrying the least significant byte.
	ChannelLow int
}

// Decode parses a raw UDP datagram. It returns the combined 16-bit channel
// value and true when the packet is a well-formed ArtDMX frame for the
// decoder's universe that carries both configured channels. Anything else
// returns false with no further detail; mismatches are routine on a shared
// lighting network.
func (d Decoder) Decode(data []byte) (uint16, bool) {
	if len(data) < headerLength {
		return 0, false
	}

	if string(data[:len(packetID)]) != packetID {
		return 0, false
	}

	if binary.LittleEndian.Uint16(data[8:10]) != opcodeDMX {
		return 0, false
	}

	if binary.LittleEndian.Uint16(data[14:16]) != d.Universe {
		return 0, false
	}

	// Declared payload length is big-endian, unlike the fields above.
	declared := int(binary.BigEndian.Uint16(data[16:18]))

	highest := max(d.ChannelHigh, d.ChannelLow)
	if highest < 1 || highest > declared {
		return 0, false
	}

	payload := data[headerLength:]
	if highest > len(payload) {
		return 0, false
	}

	high := uint16(payload[d.ChannelHigh-1])
	low := uint16(payload[d.ChannelLow-1])

	return high<<8 | low, true
}
