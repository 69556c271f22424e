package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/altiumerr"
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(PadType, 6, padDecoder{})
}

// padGeometrySep is the literal marker block Altium places between the
// designator and the geometry block of every Pad record.
const padGeometrySep = "|&|0"

type padDecoder struct{}

func (padDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	p, err := decodePad(blocks)
	if err != nil {
		return err
	}
	fp.Pads = append(fp.Pads, p)
	return nil
}

func decodePad(blocks [][]byte) (pcb.Pad, error) {
	var p pcb.Pad

	designator, err := blockio.StringBlock(blocks[0])
	if err != nil {
		return p, err
	}
	p.Designator = designator

	geom := blocks[4]
	r := blockio.NewReader(geom, "pad-geometry")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return p, err
	}
	p.Layer = l

	x, err := r.I32(13)
	if err != nil {
		return p, err
	}
	y, err := r.I32(17)
	if err != nil {
		return p, err
	}
	w, err := r.I32(21)
	if err != nil {
		return p, err
	}
	h, err := r.I32(25)
	if err != nil {
		return p, err
	}
	hole, err := r.I32(45)
	if err != nil {
		return p, err
	}
	shapeByte, err := r.Byte(49)
	if err != nil {
		return p, err
	}
	rotation, err := r.F64(52)
	if err != nil {
		return p, err
	}

	p.X = units.ToMM(x)
	p.Y = units.ToMM(y)
	p.Width = units.ToMM(w)
	p.Height = units.ToMM(h)
	p.Rotation = rotation
	p.Shape = decodePadShape(shapeByte)

	holeMM := units.ToMM(hole)
	if holeMM > throughHoleThresholdMM {
		p.HoleSize = &holeMM
	}

	return p, nil
}

func decodePadShape(b byte) pcb.PadShape {
	switch b {
	case 1:
		return pcb.Round
	case 2:
		return pcb.Rectangle
	case 3:
		return pcb.Oval
	default:
		return pcb.RoundedRectangle
	}
}

func encodePadShape(s pcb.PadShape) byte {
	switch s {
	case pcb.Round:
		return 1
	case pcb.Rectangle:
		return 2
	case pcb.Oval:
		return 3
	default:
		return 4
	}
}

// encodePad returns the six block payloads, in write order, for p.
func encodePad(p pcb.Pad) ([][]byte, error) {
	if p.Designator == "" {
		return nil, altiumerr.InvalidParameter("designator", "pad designator must not be empty")
	}

	geom := blockio.NewWriter()
	encodeCommonHeader(geom, p.Layer)

	x := units.FromMM(p.X)
	y := units.FromMM(p.Y)
	w := units.FromMM(p.Width)
	h := units.FromMM(p.Height)

	geom.I32(x)
	geom.I32(y)
	geom.I32(w)
	geom.I32(h)
	// off 29-44: middle/bottom layer size, replicated for simple pads.
	geom.I32(w)
	geom.I32(h)
	geom.I32(w)
	geom.I32(h)

	var hole int32
	if p.HoleSize != nil {
		hole = units.FromMM(*p.HoleSize)
	}
	geom.I32(hole)
	geom.Byte(encodePadShape(p.Shape))
	geom.Byte(0)
	geom.Byte(0)
	geom.F64(p.Rotation)
	// plating flag, stack mode, paste/solder-mask expansions: zeroed.
	for i := 0; i < 20; i++ {
		geom.Byte(0)
	}

	return [][]byte{
		blockio.StringBlockBytes(p.Designator),
		{},
		[]byte(padGeometrySep),
		{},
		geom.Bytes(),
		{},
	}, nil
}
