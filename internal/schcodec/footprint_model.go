package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordImplementationAnchor, implementationAnchorDecoder{})
	register(RecordFootprintModel, footprintModelDecoder{})
}

// implementationAnchorDecoder handles RECORD=44, a marker whose fields
// (UniqueID, ModelType) are written but not read back; it only precedes a
// run of RECORD=45 footprint links.
type implementationAnchorDecoder struct{}

func (implementationAnchorDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	return nil
}

func encodeImplementationAnchor(uniqueID string) string {
	return buildRecord(RecordImplementationAnchor, [][2]string{
		{"UniqueID", uniqueID},
		{"ModelType", "PCBLIB"},
	})
}

type footprintModelDecoder struct{}

func (footprintModelDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.FootprintModels = append(sym.FootprintModels, sch.FootprintModel{
		ModelName:   propString(props, "ModelName", ""),
		Description: propString(props, "Description", ""),
	})
	return nil
}

func encodeFootprintModel(m sch.FootprintModel, uniqueID string) string {
	return buildRecord(RecordFootprintModel, [][2]string{
		{"ModelName", m.ModelName},
		{"Description", m.Description},
		{"UniqueID", uniqueID},
	})
}
