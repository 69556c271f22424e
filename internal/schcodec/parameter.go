package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordParameter, parameterDecoder{})
}

type parameterDecoder struct{}

func (parameterDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Parameters = append(sym.Parameters, sch.Parameter{
		Name:     propString(props, "Name", ""),
		Text:     propString(props, "Text", ""),
		X:        propInt(props, "Location.X", 0),
		Y:        propInt(props, "Location.Y", 0),
		FontID:   propInt(props, "FontID", 1),
		Color:    propColor(props, "Color", 0),
		IsHidden: propBool(props, "IsHidden", false),
	})
	return nil
}

func encodeParameter(p sch.Parameter) string {
	return buildRecord(RecordParameter, [][2]string{
		{"Name", p.Name},
		{"Text", p.Text},
		{"Location.X", itoa(p.X)},
		{"Location.Y", itoa(p.Y)},
		{"FontID", itoa(p.FontID)},
		{"Color", itoa(int(p.Color))},
		{"IsHidden", boolToTF(p.IsHidden)},
	})
}
