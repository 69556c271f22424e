package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordLine, lineDecoder{})
}

type lineDecoder struct{}

func (lineDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Lines = append(sym.Lines, sch.Line{
		X1:        propInt(props, "Location.X", 0),
		Y1:        propInt(props, "Location.Y", 0),
		X2:        propInt(props, "Corner.X", 0),
		Y2:        propInt(props, "Corner.Y", 0),
		LineWidth: propInt(props, "LineWidth", 1),
		Color:     propColor(props, "Color", 0),
	})
	return nil
}

func encodeLine(l sch.Line) string {
	return buildRecord(RecordLine, [][2]string{
		{"Location.X", itoa(l.X1)},
		{"Location.Y", itoa(l.Y1)},
		{"Corner.X", itoa(l.X2)},
		{"Corner.Y", itoa(l.Y2)},
		{"LineWidth", itoa(l.LineWidth)},
		{"Color", itoa(int(l.Color))},
	})
}
