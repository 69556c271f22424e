package pcbcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/layer"
)

// commonHeaderSize is the width of the shared geometry header: one layer
// byte, two flag bytes, and ten bytes of 0xFF padding.
const commonHeaderSize = 13

// decodeCommonHeader reads the layer byte from the start of a geometry
// block; the flag and padding bytes are never interpreted on read.
func decodeCommonHeader(r *blockio.Reader) (layer.Layer, error) {
	b, err := r.Byte(0)
	if err != nil {
		return layer.MultiLayer, err
	}
	return layer.FromID(b), nil
}

// encodeCommonHeader writes the layer byte, two zero flag bytes, and ten
// 0xFF padding bytes, matching what this codec's own reader expects.
func encodeCommonHeader(w *blockio.Writer, l layer.Layer) {
	w.Byte(layer.ToID(l))
	w.Byte(0)
	w.Byte(0)
	for i := 0; i < 10; i++ {
		w.Byte(0xFF)
	}
}

// throughHoleThresholdMM is the 1 micron cutoff: hole sizes at or below
// this are treated as "no hole" (a surface-mount pad).
const throughHoleThresholdMM = 0.001
