package pcbcodec

import (
	"bytes"

	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/units"
)

func init() {
	register(TextType, 2, textDecoder{})
}

// specialLabelMarkers are the designator/comment auto-text markers Altium
// embeds directly in the geometry block when the content string-block is
// left empty; see the WideStrings open question in the design notes.
var specialLabelMarkers = []string{".Designator", ".Comment"}

type textDecoder struct{}

func (textDecoder) Decode(fp *pcb.Footprint, blocks [][]byte) error {
	t, err := decodeText(blocks[0], blocks[1])
	if err != nil {
		return err
	}
	fp.Text = append(fp.Text, t)
	return nil
}

func decodeText(geomBlock, contentBlock []byte) (pcb.Text, error) {
	var t pcb.Text
	r := blockio.NewReader(geomBlock, "text")

	l, err := decodeCommonHeader(r)
	if err != nil {
		return t, err
	}
	t.Layer = l

	x, err := r.I32(13)
	if err != nil {
		return t, err
	}
	y, err := r.I32(17)
	if err != nil {
		return t, err
	}
	height, err := r.I32(21)
	if err != nil {
		return t, err
	}
	rotation, err := r.F64(27)
	if err != nil {
		return t, err
	}

	t.X, t.Y = units.ToMM(x), units.ToMM(y)
	t.Height = units.ToMM(height)
	t.Rotation = rotation

	if len(contentBlock) > 0 {
		content, err := blockio.StringBlock(contentBlock)
		if err != nil {
			return t, err
		}
		t.Content = content
		return t, nil
	}

	for _, marker := range specialLabelMarkers {
		if bytes.Contains(geomBlock, []byte(marker)) {
			t.Content = marker
			break
		}
	}
	return t, nil
}

func encodeText(t pcb.Text) [][]byte {
	geom := blockio.NewWriter()
	encodeCommonHeader(geom, t.Layer)
	geom.I32(units.FromMM(t.X))
	geom.I32(units.FromMM(t.Y))
	geom.I32(units.FromMM(t.Height))
	geom.Byte(0)
	geom.Byte(0)
	geom.F64(t.Rotation)

	var content []byte
	isSpecial := false
	for _, marker := range specialLabelMarkers {
		if t.Content == marker {
			isSpecial = true
			break
		}
	}
	if isSpecial {
		geom.Raw([]byte(t.Content))
	} else {
		content = blockio.StringBlockBytes(t.Content)
	}

	return [][]byte{geom.Bytes(), content}
}
