package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(FillType, 1, fillDecoder{})
}

type fillDecoder struct{}

func (fillDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	f, err := decodeFill(blocks[0])
	if err != nil {
		return err
	}
	fp.Fills = append(fp.Fills, f)
	return nil
}

func decodeFill(payload []byte) (pcb.Fill, error) {
	var f pcb.Fill
	r := blockio.NewReader(payload, "fill")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return f, err
	}
	f.Layer = l

	x1, err := r.I32(13)
	if err != nil {
		return f, err
	}
	y1, err := r.I32(17)
	if err != nil {
		return f, err
	}
	x2, err := r.I32(21)
	if err != nil {
		return f, err
	}
	y2, err := r.I32(25)
	if err != nil {
		return f, err
	}
	rotation, err := r.F64(29)
	if err != nil {
		return f, err
	}

	f.X1, f.Y1 = units.ToMM(x1), units.ToMM(y1)
	f.X2, f.Y2 = units.ToMM(x2), units.ToMM(y2)
	f.Rotation = rotation
	return f, nil
}

func encodeFill(f pcb.Fill) [][]byte {
	w := blockio.NewWriter()
	encodeCommonHeader(w, f.Layer)
	w.I32(units.FromMM(f.X1))
	w.I32(units.FromMM(f.Y1))
	w.I32(units.FromMM(f.X2))
	w.I32(units.FromMM(f.Y2))
	w.F64(f.Rotation)
	return [][]byte{w.Bytes()}
}
