// Package pcbcodec implements the PcbLib primitive codec (spec component
// C4) and the Data-stream framing around it (C5): record-type dispatch,
// the common 13-byte geometry header, and per-primitive encode/decode.
package pcbcodec

import "github.com/hailam/altiumlib/internal/ports"

// Record-type bytes, see the PcbDataStream grammar.
const (
	EndMarker         byte = 0x00
	ArcType           byte = 0x01
	PadType           byte = 0x02
	ViaType           byte = 0x03
	TrackType         byte = 0x04
	TextType          byte = 0x05
	FillType          byte = 0x06
	RegionType        byte = 0x0B
	ComponentBodyType byte = 0x0C
)

// recordSpec pairs a decoder with the fixed number of length-prefixed
// blocks its record type always carries, so the stream reader knows how
// many blocks to collect before dispatching.
type recordSpec struct {
	blockCount int
	decoder    ports.PcbRecordDecoder
}

var registry = make(map[byte]recordSpec)

// register is called from each primitive file's init(), so each record
// type registers its own decoder and block count.
func register(recordType byte, blockCount int, decoder ports.PcbRecordDecoder) {
	registry[recordType] = recordSpec{blockCount: blockCount, decoder: decoder}
}
