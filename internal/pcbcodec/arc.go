package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(ArcType, 1, arcDecoder{})
}

type arcDecoder struct{}

func (arcDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	a, err := decodeArc(blocks[0])
	if err != nil {
		return err
	}
	fp.Arcs = append(fp.Arcs, a)
	return nil
}

func decodeArc(payload []byte) (pcb.Arc, error) {
	var a pcb.Arc
	r := blockio.NewReader(payload, "arc")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return a, err
	}
	a.Layer = l

	x, err := r.I32(13)
	if err != nil {
		return a, err
	}
	y, err := r.I32(17)
	if err != nil {
		return a, err
	}
	radius, err := r.I32(21)
	if err != nil {
		return a, err
	}
	startAngle, err := r.F64(25)
	if err != nil {
		return a, err
	}
	endAngle, err := r.F64(33)
	if err != nil {
		return a, err
	}
	width, err := r.I32(41)
	if err != nil {
		return a, err
	}

	a.X, a.Y = units.ToMM(x), units.ToMM(y)
	a.Radius = units.ToMM(radius)
	a.StartAngle, a.EndAngle = startAngle, endAngle
	a.Width = units.ToMM(width)
	return a, nil
}

func encodeArc(a pcb.Arc) [][]byte {
	w := blockio.NewWriter()
	encodeCommonHeader(w, a.Layer)
	w.I32(units.FromMM(a.X))
	w.I32(units.FromMM(a.Y))
	w.I32(units.FromMM(a.Radius))
	w.F64(a.StartAngle)
	w.F64(a.EndAngle)
	w.I32(units.FromMM(a.Width))
	return [][]byte{w.Bytes()}
}
