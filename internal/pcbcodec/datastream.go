package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/altiumerr"
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
)

// DecodeDataStream parses one component's Data stream: a name block,
// followed by records until the 0x00 end marker. A malformed record
// aborts parsing of the rest of the stream; the partially-populated
// Footprint and a diagnostic error carrying the byte offset are both
// returned, per this codec's error policy.
func DecodeDataStream(data []byte, path string) (*pcb.Footprint, error) {
	r := blockio.NewReader(data, path)

	nameBlock, offset, err := r.Block(0)
	if err != nil {
		return nil, err
	}
	name, err := blockio.StringBlock(nameBlock)
	if err != nil {
		return nil, err
	}

	fp := &pcb.Footprint{Name: name}

	for offset < r.Len() {
		recordType, err := r.Byte(offset)
		if err != nil {
			return fp, err
		}
		offset++
		if recordType == EndMarker {
			return fp, nil
		}

		spec, ok := registry[recordType]
		if !ok {
			return fp, altiumerr.Parse(path, int64(offset-1), "unknown record type byte")
		}

		blocks := make([][]byte, spec.blockCount)
		for i := 0; i < spec.blockCount; i++ {
			var payload []byte
			payload, offset, err = r.Block(offset)
			if err != nil {
				return fp, err
			}
			blocks[i] = payload
		}

		if err := spec.decoder.Decode(fp, blocks); err != nil {
			return fp, err
		}
	}

	// Stream ended without an explicit 0x00; tolerate it, the footprint
	// decoded so far is still returned.
	return fp, nil
}

// EncodeDataStream assembles a full Data stream for fp: a name block,
// then every primitive record (order: Arcs, Pads, Tracks, Regions, Text,
// Fills, ComponentBodies, Vias — not observable across a round-trip), then
// the 0x00 end marker, always emitted even for an empty footprint.
func EncodeDataStream(fp *pcb.Footprint) ([]byte, error) {
	w := blockio.NewWriter()
	w.Block(blockio.StringBlockBytes(fp.Name))

	for _, a := range fp.Arcs {
		blocks := encodeArc(a)
		w.Byte(ArcType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, p := range fp.Pads {
		blocks, err := encodePad(p)
		if err != nil {
			return nil, err
		}
		w.Byte(PadType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, tr := range fp.Tracks {
		blocks := encodeTrack(tr)
		w.Byte(TrackType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, reg := range fp.Regions {
		blocks := encodeRegion(reg)
		w.Byte(RegionType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, t := range fp.Text {
		blocks := encodeText(t)
		w.Byte(TextType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, f := range fp.Fills {
		blocks := encodeFill(f)
		w.Byte(FillType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, cb := range fp.ComponentBodies {
		blocks := encodeComponentBody(cb)
		w.Byte(ComponentBodyType)
		for _, b := range blocks {
			w.Block(b)
		}
	}
	for _, v := range fp.Vias {
		blocks := encodeVia(v)
		w.Byte(ViaType)
		for _, b := range blocks {
			w.Block(b)
		}
	}

	w.Byte(EndMarker)
	return w.Bytes(), nil
}
