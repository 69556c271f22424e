package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordDesignator, designatorDecoder{})
}

type designatorDecoder struct{}

func (designatorDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Designator = propString(props, "Text", sym.Designator)
	return nil
}

func encodeDesignator(designator string) string {
	return buildRecord(RecordDesignator, [][2]string{{"Text", designator}})
}
