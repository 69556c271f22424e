package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordArc, arcDecoder{})
}

type arcDecoder struct{}

func (arcDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Arcs = append(sym.Arcs, sch.Arc{
		X:          propInt(props, "Location.X", 0),
		Y:          propInt(props, "Location.Y", 0),
		Radius:     propInt(props, "Radius", 0),
		StartAngle: propFloat(props, "StartAngle", 0),
		EndAngle:   propFloat(props, "EndAngle", 360),
		LineWidth:  propInt(props, "LineWidth", 1),
		Color:      propColor(props, "Color", 0),
	})
	return nil
}

func encodeArc(a sch.Arc) string {
	return buildRecord(RecordArc, [][2]string{
		{"Location.X", itoa(a.X)},
		{"Location.Y", itoa(a.Y)},
		{"Radius", itoa(a.Radius)},
		{"StartAngle", ftoa(a.StartAngle)},
		{"EndAngle", ftoa(a.EndAngle)},
		{"LineWidth", itoa(a.LineWidth)},
		{"Color", itoa(int(a.Color))},
	})
}
