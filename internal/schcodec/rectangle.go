package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordRectangle, rectangleDecoder{})
}

type rectangleDecoder struct{}

func (rectangleDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Rectangles = append(sym.Rectangles, sch.Rectangle{
		X1:        propInt(props, "Location.X", 0),
		Y1:        propInt(props, "Location.Y", 0),
		X2:        propInt(props, "Corner.X", 0),
		Y2:        propInt(props, "Corner.Y", 0),
		LineWidth: propInt(props, "LineWidth", 1),
		Color:     propColor(props, "Color", 0),
		AreaColor: propColor(props, "AreaColor", 0),
	})
	return nil
}

func encodeRectangle(r sch.Rectangle) string {
	return buildRecord(RecordRectangle, [][2]string{
		{"Location.X", itoa(r.X1)},
		{"Location.Y", itoa(r.Y1)},
		{"Corner.X", itoa(r.X2)},
		{"Corner.Y", itoa(r.Y2)},
		{"LineWidth", itoa(r.LineWidth)},
		{"Color", itoa(int(r.Color))},
		{"AreaColor", itoa(int(r.AreaColor))},
	})
}
