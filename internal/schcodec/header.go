package schcodec

import "github.com/hailam/altiumlib/internal/model/sch"

func init() {
	register(RecordComponentHeader, componentHeaderDecoder{})
}

type componentHeaderDecoder struct{}

func (componentHeaderDecoder) Decode(sym *sch.Symbol, props map[string]string) error {
	sym.Description = propString(props, "ComponentDescription", sym.Description)
	// On disk PartCount is stored as part_count+1, with a floor of 1.
	sym.PartCount = propInt(props, "PartCount", 2) - 1
	if sym.PartCount < 1 {
		sym.PartCount = 1
	}
	return nil
}

// encodeComponentHeader builds the RECORD=1 text record for sym.
func encodeComponentHeader(sym *sch.Symbol, libRef string) string {
	partCount := sym.PartCount
	if partCount < 1 {
		partCount = 1
	}
	return buildRecord(RecordComponentHeader, [][2]string{
		{"LibReference", libRef},
		{"ComponentDescription", sym.Description},
		{"PartCount", itoa(partCount + 1)},
		{"DisplayModeCount", "1"},
		{"IndexInSheet", "-1"},
		{"OwnerPartId", "-1"},
		{"CurrentPartId", "1"},
		{"SourceLibraryName", "*"},
		{"TargetFileName", "*"},
		{"AllPinCount", itoa(len(sym.Pins))},
		{"AreaColor", "16777215"},
		{"Color", "0"},
		{"PartIDLocked", "F"},
	})
}
