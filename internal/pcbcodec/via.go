package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/layer"
	"github.com/hailam/altiumlib/internal/model/pcb"
)

func init() {
	register(ViaType, 6, viaDecoder{})
}

type viaDecoder struct{}

// Decode recovers only the layer byte from the first of a Via's six
// blocks; the remaining field layout is an open question (see design
// notes), so the blocks are consumed and otherwise discarded.
func (viaDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	r := blockio.NewReader(blocks[0], "via")
	l, err := decodeCommonHeader(r)
	if err != nil {
		// A via whose first block is too short to hold a layer byte still
		// does not abort the rest of the stream; keep it MultiLayer.
		l = layer.MultiLayer
	}
	fp.Vias = append(fp.Vias, pcb.Via{Layer: l})
	return nil
}

func encodeVia(v pcb.Via) [][]byte {
	first := blockio.NewWriter()
	encodeCommonHeader(first, v.Layer)
	return [][]byte{first.Bytes(), {}, {}, {}, {}, {}}
}
