package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(TrackType, 1, trackDecoder{})
}

type trackDecoder struct{}

func (trackDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	tr, err := decodeTrack(blocks[0])
	if err != nil {
		return err
	}
	fp.Tracks = append(fp.Tracks, tr)
	return nil
}

func decodeTrack(payload []byte) (pcb.Track, error) {
	var tr pcb.Track
	r := blockio.NewReader(payload, "track")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return tr, err
	}
	tr.Layer = l

	x1, err := r.I32(13)
	if err != nil {
		return tr, err
	}
	y1, err := r.I32(17)
	if err != nil {
		return tr, err
	}
	x2, err := r.I32(21)
	if err != nil {
		return tr, err
	}
	y2, err := r.I32(25)
	if err != nil {
		return tr, err
	}
	width, err := r.I32(29)
	if err != nil {
		return tr, err
	}

	tr.X1, tr.Y1 = units.ToMM(x1), units.ToMM(y1)
	tr.X2, tr.Y2 = units.ToMM(x2), units.ToMM(y2)
	tr.Width = units.ToMM(width)
	return tr, nil
}

func encodeTrack(tr pcb.Track) [][]byte {
	w := blockio.NewWriter()
	encodeCommonHeader(w, tr.Layer)
	w.I32(units.FromMM(tr.X1))
	w.I32(units.FromMM(tr.Y1))
	w.I32(units.FromMM(tr.X2))
	w.I32(units.FromMM(tr.Y2))
	w.I32(units.FromMM(tr.Width))
	return [][]byte{w.Bytes()}
}
