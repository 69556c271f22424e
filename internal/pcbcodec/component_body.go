package pcbcodec

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/hailam/altiumlib/internal/layer"
	"github.com/hailam/altiumlib/internal/model/pcb"
)

func init() {
	register(ComponentBodyType, 3, componentBodyDecoder{})
}

// v7LayerMarker is where the parseable parameter string begins inside a
// ComponentBody's first block; anything before it is unparsed prefix.
const v7LayerMarker = "V7_LAYER="

var v7LayerToLayer = map[string]layer.Layer{
	"MECHANICAL2": layer.TopAssembly,
	"MECHANICAL3": layer.BottomAssembly,
	"MECHANICAL4": layer.TopCourtyard,
	"MECHANICAL5": layer.BottomCourtyard,
	"MECHANICAL6": layer.Top3DBody,
	"MECHANICAL7": layer.Bottom3DBody,
}

var layerToV7Layer = func() map[layer.Layer]string {
	m := make(map[layer.Layer]string, len(v7LayerToLayer))
	for k, v := range v7LayerToLayer {
		m[v] = k
	}
	return m
}()

type componentBodyDecoder struct{}

func (componentBodyDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	cb, err := decodeComponentBody(blocks[0])
	if err != nil {
		return err
	}
	fp.ComponentBodies = append(fp.ComponentBodies, cb)
	return nil
}

func decodeComponentBody(payload []byte) (pcb.ComponentBody, error) {
	var cb pcb.ComponentBody

	idx := bytes.Index(payload, []byte(v7LayerMarker))
	if idx < 0 {
		return cb, nil
	}
	params := parsePipeParams(string(payload[idx:]))

	if v, ok := params["V7_LAYER"]; ok {
		cb.Layer = v7LayerToLayer[v]
	}
	cb.ModelID = params["MODELID"]
	cb.ModelName = params["MODEL.NAME"]
	cb.ModelEmbedded = strings.EqualFold(params["MODEL.EMBED"], "TRUE")
	cb.RotX = parseFloatOr(params["MODEL.3D.ROTX"], 0)
	cb.RotY = parseFloatOr(params["MODEL.3D.ROTY"], 0)
	cb.RotZ = parseFloatOr(params["MODEL.3D.ROTZ"], 0)
	cb.DZ = parseMilOrMM(params["MODEL.3D.DZ"])
	cb.StandoffHeight = parseMilOrMM(params["STANDOFFHEIGHT"])
	cb.OverallHeight = parseMilOrMM(params["OVERALLHEIGHT"])

	return cb, nil
}

func encodeComponentBody(cb pcb.ComponentBody) [][]byte {
	var b strings.Builder
	b.WriteString(v7LayerMarker)
	b.WriteString(layerToV7Layer[cb.Layer])
	b.WriteByte('|')
	b.WriteString("MODELID=")
	b.WriteString(cb.ModelID)
	b.WriteByte('|')
	b.WriteString("MODEL.NAME=")
	b.WriteString(cb.ModelName)
	b.WriteByte('|')
	b.WriteString("MODEL.EMBED=")
	if cb.ModelEmbedded {
		b.WriteString("TRUE")
	} else {
		b.WriteString("FALSE")
	}
	b.WriteByte('|')
	b.WriteString("MODEL.3D.ROTX=")
	b.WriteString(strconv.FormatFloat(cb.RotX, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString("MODEL.3D.ROTY=")
	b.WriteString(strconv.FormatFloat(cb.RotY, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString("MODEL.3D.ROTZ=")
	b.WriteString(strconv.FormatFloat(cb.RotZ, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString("MODEL.3D.DZ=")
	b.WriteString(strconv.FormatFloat(cb.DZ, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString("STANDOFFHEIGHT=")
	b.WriteString(strconv.FormatFloat(cb.StandoffHeight, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString("OVERALLHEIGHT=")
	b.WriteString(strconv.FormatFloat(cb.OverallHeight, 'g', -1, 64))
	b.WriteByte('|')

	return [][]byte{[]byte(b.String()), {}, {}}
}

// parsePipeParams splits a leading-and-trailing-"|"-delimited KEY=VALUE
// string into a map, shared by ComponentBody and, eventually, any other
// pipe-delimited parameter text this codec encounters.
func parsePipeParams(s string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(s, "|") {
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func parseFloatOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// parseMilOrMM parses a decimal number optionally suffixed with "mil",
// converting mil to mm; a bare number is already in mm.
func parseMilOrMM(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if rest, ok := trimSuffixFold(s, "mil"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return 0
		}
		return v * 0.0254
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func trimSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) {
		return s, false
	}
	tail := s[len(s)-len(suffix):]
	if strings.EqualFold(tail, suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
