package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordEllipse, ellipseDecoder{})
}

type ellipseDecoder struct{}

func (ellipseDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Ellipses = append(sym.Ellipses, sch.Ellipse{
		X:               propInt(props, "Location.X", 0),
		Y:               propInt(props, "Location.Y", 0),
		Radius:          propInt(props, "Radius", 0),
		SecondaryRadius: propInt(props, "SecondaryRadius", 0),
		Color:           propColor(props, "Color", 0),
		AreaColor:       propColor(props, "AreaColor", 0),
		IsSolid:         propBool(props, "IsSolid", false),
	})
	return nil
}

func encodeEllipse(e sch.Ellipse) string {
	return buildRecord(RecordEllipse, [][2]string{
		{"Location.X", itoa(e.X)},
		{"Location.Y", itoa(e.Y)},
		{"Radius", itoa(e.Radius)},
		{"SecondaryRadius", itoa(e.SecondaryRadius)},
		{"Color", itoa(int(e.Color))},
		{"AreaColor", itoa(int(e.AreaColor))},
		{"IsSolid", boolToTF(e.IsSolid)},
	})
}
