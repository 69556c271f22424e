package pcbcodec

import (
	"math"

	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(RegionType, 2, regionDecoder{})
}

// regionUnknownBytes separates the common header from the parameter
// string length in a Region's properties block; contents are unused.
const regionUnknownBytes = 5

type regionDecoder struct{}

func (regionDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	reg, err := decodeRegion(blocks[0])
	if err != nil {
		return err
	}
	fp.Regions = append(fp.Regions, reg)
	return nil
}

func decodeRegion(payload []byte) (pcb.Region, error) {
	var reg pcb.Region
	r := blockio.NewReader(payload, "region")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return reg, err
	}
	reg.Layer = l

	at := commonHeaderSize + regionUnknownBytes
	paramLen, err := r.U32(at)
	if err != nil {
		return reg, err
	}
	at += 4
	paramBytes, err := r.Bytes(at, int(paramLen))
	if err != nil {
		return reg, err
	}
	reg.ParameterText = string(paramBytes)
	at += int(paramLen)

	vertexCount, err := r.U32(at)
	if err != nil {
		return reg, err
	}
	at += 4

	reg.Vertices = make([]pcb.Vertex, 0, vertexCount)
	for i := uint32(0); i < vertexCount; i++ {
		xf, err := r.F64(at)
		if err != nil {
			return reg, err
		}
		at += 8
		yf, err := r.F64(at)
		if err != nil {
			return reg, err
		}
		at += 8
		reg.Vertices = append(reg.Vertices, pcb.Vertex{
			X: units.ToMM(int32(math.Round(xf))),
			Y: units.ToMM(int32(math.Round(yf))),
		})
	}
	return reg, nil
}

func encodeRegion(reg pcb.Region) [][]byte {
	w := blockio.NewWriter()
	encodeCommonHeader(w, reg.Layer)
	for i := 0; i < regionUnknownBytes; i++ {
		w.Byte(0)
	}

	paramBytes := []byte(reg.ParameterText)
	w.U32(uint32(len(paramBytes)))
	w.Raw(paramBytes)

	w.U32(uint32(len(reg.Vertices)))
	for _, v := range reg.Vertices {
		w.F64(float64(units.FromMM(v.X)))
		w.F64(float64(units.FromMM(v.Y)))
	}

	return [][]byte{w.Bytes(), {}}
}
