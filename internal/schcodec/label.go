package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordLabel, labelDecoder{})
}

type labelDecoder struct{}

func (labelDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Labels = append(sym.Labels, sch.Label{
		X:             propInt(props, "Location.X", 0),
		Y:             propInt(props, "Location.Y", 0),
		Color:         propColor(props, "Color", 0),
		FontID:        propInt(props, "FontID", 1),
		Orientation:   propInt(props, "Orientation", 0),
		Justification: sch.TextJustification(propInt(props, "Justification", int(sch.BottomLeft))),
		Text:          propString(props, "Text", ""),
	})
	return nil
}

func encodeLabel(l sch.Label) string {
	return buildRecord(RecordLabel, [][2]string{
		{"Location.X", itoa(l.X)},
		{"Location.Y", itoa(l.Y)},
		{"Color", itoa(int(l.Color))},
		{"FontID", itoa(l.FontID)},
		{"Orientation", itoa(l.Orientation)},
		{"Justification", itoa(int(l.Justification))},
		{"Text", l.Text},
	})
}
