package schcodec

import "github.com/hailam/altiumlib/internal/ports"

// RECORD=<id> values dispatched from a SchLib text record.
const (
	RecordComponentHeader     = 1
	RecordLabel               = 4
	RecordPolyline            = 6
	RecordEllipse             = 8
	RecordArc                 = 12
	RecordLine                = 13
	RecordRectangle           = 14
	RecordDesignator          = 34
	RecordParameter           = 41
	RecordImplementationAnchor = 44
	RecordFootprintModel      = 45
)

// Outer record-type tags: the u16 BE field framing every record.
const (
	TextRecord byte = 0x00
	BinaryPin  byte = 0x01
)

var registry = make(map[int]ports.SchRecordDecoder)

// register is called from each record file's init(), so each RECORD id
// registers its own decoder.
func register(recordID int, decoder ports.SchRecordDecoder) {
	registry[recordID] = decoder
}
