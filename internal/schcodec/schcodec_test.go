package schcodec

import (
	"testing"

	"github.com/hailam/altiumlib/internal/model/sch"
)

func TestPinRoundTrip(t *testing.T) {
	original := sch.Pin{
		Name: "A0", Designator: "1",
		X: 20, Y: 0, Length: 10,
		Orientation:    sch.Left,
		ElectricalType: sch.Output,
		Hidden:         false,
		ShowName:       true,
		ShowDesignator: true,
		Description:    "address bus bit 0",
		OwnerPartID:    1,
		Colour:         0x00FF00,
	}
	decoded, err := decodePin(encodePin(original))
	if err != nil {
		t.Fatalf("decodePin: %v", err)
	}
	if decoded.Name != original.Name || decoded.Designator != original.Designator {
		t.Errorf("name/designator = %q/%q, want %q/%q", decoded.Name, decoded.Designator, original.Name, original.Designator)
	}
	if decoded.X != original.X || decoded.Y != original.Y || decoded.Length != original.Length {
		t.Errorf("geometry = %+v, want %+v", decoded, original)
	}
	if decoded.Orientation != original.Orientation {
		t.Errorf("Orientation = %v, want %v", decoded.Orientation, original.Orientation)
	}
	if decoded.ElectricalType != original.ElectricalType {
		t.Errorf("ElectricalType = %v, want %v", decoded.ElectricalType, original.ElectricalType)
	}
	if decoded.ShowName != original.ShowName || decoded.ShowDesignator != original.ShowDesignator {
		t.Errorf("show flags = %v/%v, want %v/%v", decoded.ShowName, decoded.ShowDesignator, original.ShowName, original.ShowDesignator)
	}
	if decoded.Description != original.Description {
		t.Errorf("Description = %q, want %q", decoded.Description, original.Description)
	}
	if decoded.OwnerPartID != original.OwnerPartID {
		t.Errorf("OwnerPartID = %d, want %d", decoded.OwnerPartID, original.OwnerPartID)
	}
}

func TestPinSymbolRoundTripThroughRecord(t *testing.T) {
	original := sch.Pin{
		Name: "CLK", Designator: "2",
		SymbolInnerEdge: sch.SymbolClock,
		SymbolOuterEdge: sch.SymbolDot,
		SymbolInside:    sch.SymbolActiveLowInput,
		SymbolOutside:   sch.SymbolNone,
	}
	decoded, err := decodePin(encodePin(original))
	if err != nil {
		t.Fatalf("decodePin: %v", err)
	}
	if decoded.SymbolInnerEdge != sch.SymbolClock || decoded.SymbolOuterEdge != sch.SymbolDot {
		t.Errorf("symbols = %v/%v", decoded.SymbolInnerEdge, decoded.SymbolOuterEdge)
	}
}

func TestComponentHeaderPartCountStoredPlusOne(t *testing.T) {
	sym := &sch.Symbol{PartCount: 2}
	record := encodeComponentHeader(sym, "RESISTOR")
	props := parsePipeProps(record)
	if props["partcount"] != "3" {
		t.Errorf("on-disk PartCount = %q, want 3", props["partcount"])
	}

	var decoded sch.Symbol
	if err := (componentHeaderDecoder{}).Decode(&decoded, props); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.PartCount != 2 {
		t.Errorf("decoded PartCount = %d, want 2", decoded.PartCount)
	}
}

func TestDataStreamRoundTripE2E4(t *testing.T) {
	sym := &sch.Symbol{
		Name:      "RESISTOR",
		PartCount: 1,
		Pins: []sch.Pin{
			{Name: "1", Designator: "1", X: -20, Y: 0, Length: 10, Orientation: sch.Right},
			{Name: "2", Designator: "2", X: 20, Y: 0, Length: 10, Orientation: sch.Left},
		},
		Rectangles: []sch.Rectangle{{X1: -10, Y1: -5, X2: 10, Y2: 5}},
		Parameters: []sch.Parameter{{Name: "Value", Text: "*"}},
		FootprintModels: []sch.FootprintModel{{ModelName: "0603"}},
	}

	data := EncodeDataStream(sym, sym.Name)
	if data[len(data)-2] != 0 || data[len(data)-1] != 0 {
		t.Fatalf("last two bytes = %v, want zero terminator", data[len(data)-2:])
	}

	decoded, err := DecodeDataStream(data, "test")
	if err != nil {
		t.Fatalf("DecodeDataStream: %v", err)
	}
	if len(decoded.Pins) != 2 {
		t.Errorf("len(Pins) = %d, want 2", len(decoded.Pins))
	}
	if len(decoded.Rectangles) != 1 {
		t.Errorf("len(Rectangles) = %d, want 1", len(decoded.Rectangles))
	}
	if len(decoded.Parameters) != 1 {
		t.Errorf("len(Parameters) = %d, want 1", len(decoded.Parameters))
	}
	if len(decoded.FootprintModels) != 1 {
		t.Errorf("len(FootprintModels) = %d, want 1", len(decoded.FootprintModels))
	}
}

func TestDataStreamMultiPartE2E5(t *testing.T) {
	sym := &sch.Symbol{Name: "MULTI", PartCount: 2}
	data := EncodeDataStream(sym, sym.Name)
	decoded, err := DecodeDataStream(data, "test")
	if err != nil {
		t.Fatalf("DecodeDataStream: %v", err)
	}
	if decoded.PartCount != 2 {
		t.Errorf("PartCount = %d, want 2", decoded.PartCount)
	}
}
