package schcodec

import (
	"strconv"

	"github.com/hailam/altiumlib/internal/model/sch"
)

func init() {
	register(RecordPolyline, polylineDecoder{})
}

type polylineDecoder struct{}

func (polylineDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	count := propInt(props, "LocationCount", 0)
	points := make([]sch.Point, 0, count)
	for i := 1; i <= count; i++ {
		points = append(points, sch.Point{
			X: propInt(props, "X"+strconv.Itoa(i), 0),
			Y: propInt(props, "Y"+strconv.Itoa(i), 0),
		})
	}
	sym.Polylines = append(sym.Polylines, sch.Polyline{
		Points:    points,
		LineWidth: propInt(props, "LineWidth", 1),
		Color:     propColor(props, "Color", 0),
	})
	return nil
}

func encodePolyline(p sch.Polyline) string {
	pairs := [][2]string{
		{"LineWidth", itoa(p.LineWidth)},
		{"Color", itoa(int(p.Color))},
		{"LocationCount", itoa(len(p.Points))},
	}
	for i, pt := range p.Points {
		n := strconv.Itoa(i + 1)
		pairs = append(pairs, [2]string{"X" + n, itoa(pt.X)}, [2]string{"Y" + n, itoa(pt.Y)})
	}
	return buildRecord(RecordPolyline, pairs)
}
