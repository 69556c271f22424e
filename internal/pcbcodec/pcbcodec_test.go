package pcbcodec

import (
	"math"
	"testing"

	"github.com/hailam/altiumlib/internal/layer"
	"github.com/hailam/altiumlib/internal/model/pcb"
)

const mmTolerance = 1e-6

func almostEqual(a, b float64) bool { return math.Abs(a-b) < mmTolerance }

func TestPadRoundTrip(t *testing.T) {
	hole := 0.8
	original := pcb.Pad{
		Designator: "1",
		X:          0.4, Y: -0.4,
		Width: 0.5, Height: 0.5,
		HoleSize: &hole,
		Shape:    pcb.Round,
		Rotation: 90,
		Layer:    layer.TopLayer,
	}
	blocks, err := encodePad(original)
	if err != nil {
		t.Fatalf("encodePad: %v", err)
	}
	decoded, err := decodePad(blocks)
	if err != nil {
		t.Fatalf("decodePad: %v", err)
	}
	if decoded.Designator != original.Designator {
		t.Errorf("Designator = %q, want %q", decoded.Designator, original.Designator)
	}
	if !almostEqual(decoded.X, original.X) || !almostEqual(decoded.Y, original.Y) {
		t.Errorf("X,Y = %v,%v want %v,%v", decoded.X, decoded.Y, original.X, original.Y)
	}
	if !almostEqual(decoded.Width, original.Width) || !almostEqual(decoded.Height, original.Height) {
		t.Errorf("Width,Height = %v,%v want %v,%v", decoded.Width, decoded.Height, original.Width, original.Height)
	}
	if decoded.Layer != original.Layer {
		t.Errorf("Layer = %v, want %v", decoded.Layer, original.Layer)
	}
	if decoded.Shape != original.Shape {
		t.Errorf("Shape = %v, want %v", decoded.Shape, original.Shape)
	}
	if decoded.HoleSize == nil || !almostEqual(*decoded.HoleSize, hole) {
		t.Errorf("HoleSize = %v, want %v", decoded.HoleSize, hole)
	}
}

func TestPadSMDHasNoHole(t *testing.T) {
	original := pcb.Pad{Designator: "2", Width: 0.5, Height: 0.5, Shape: pcb.Rectangle}
	blocks, err := encodePad(original)
	if err != nil {
		t.Fatalf("encodePad: %v", err)
	}
	decoded, err := decodePad(blocks)
	if err != nil {
		t.Fatalf("decodePad: %v", err)
	}
	if decoded.HoleSize != nil {
		t.Errorf("HoleSize = %v, want nil", *decoded.HoleSize)
	}
}

func TestPadRejectsEmptyDesignator(t *testing.T) {
	if _, err := encodePad(pcb.Pad{}); err == nil {
		t.Fatal("expected error for empty designator")
	}
}

func TestTrackRoundTrip(t *testing.T) {
	original := pcb.Track{X1: -1.5, Y1: 2.5, X2: 3.5, Y2: -4.5, Width: 0.2, Layer: layer.BottomLayer}
	decoded, err := decodeTrack(encodeTrack(original)[0])
	if err != nil {
		t.Fatalf("decodeTrack: %v", err)
	}
	if !almostEqual(decoded.X1, original.X1) || !almostEqual(decoded.Y2, original.Y2) {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
	if decoded.Layer != original.Layer {
		t.Errorf("Layer = %v, want %v", decoded.Layer, original.Layer)
	}
}

func TestArcFullCircleRoundTrip(t *testing.T) {
	original := pcb.Arc{X: 0, Y: 0, Radius: 1.0, StartAngle: 0, EndAngle: 360, Width: 0.15, Layer: layer.TopOverlay}
	decoded, err := decodeArc(encodeArc(original)[0])
	if err != nil {
		t.Fatalf("decodeArc: %v", err)
	}
	if decoded.StartAngle != 0 || decoded.EndAngle != 360 {
		t.Errorf("angles = %v..%v, want 0..360", decoded.StartAngle, decoded.EndAngle)
	}
	if !almostEqual(decoded.Radius, 1.0) {
		t.Errorf("Radius = %v, want 1.0", decoded.Radius)
	}
	if decoded.Layer != layer.TopOverlay {
		t.Errorf("Layer = %v, want TopOverlay", decoded.Layer)
	}
}

func TestFillRoundTrip(t *testing.T) {
	original := pcb.Fill{X1: -1, Y1: -1, X2: 1, Y2: 1, Rotation: 45, Layer: layer.BottomSolder}
	decoded, err := decodeFill(encodeFill(original)[0])
	if err != nil {
		t.Fatalf("decodeFill: %v", err)
	}
	if !almostEqual(decoded.X2, 1) || decoded.Rotation != 45 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRegionVertexExactRoundTrip(t *testing.T) {
	original := pcb.Region{
		Layer:         layer.TopLayer,
		ParameterText: "KIND=COPPER",
		Vertices: []pcb.Vertex{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	blocks := encodeRegion(original)
	decoded, err := decodeRegion(blocks[0])
	if err != nil {
		t.Fatalf("decodeRegion: %v", err)
	}
	if decoded.ParameterText != original.ParameterText {
		t.Errorf("ParameterText = %q, want %q", decoded.ParameterText, original.ParameterText)
	}
	if len(decoded.Vertices) != len(original.Vertices) {
		t.Fatalf("len(Vertices) = %d, want %d", len(decoded.Vertices), len(original.Vertices))
	}
	for i, v := range original.Vertices {
		if !almostEqual(decoded.Vertices[i].X, v.X) || !almostEqual(decoded.Vertices[i].Y, v.Y) {
			t.Errorf("vertex %d = %+v, want %+v", i, decoded.Vertices[i], v)
		}
	}
}

func TestComponentBodyRoundTrip(t *testing.T) {
	original := pcb.ComponentBody{
		Layer:          layer.TopAssembly,
		ModelID:        "ABC123",
		ModelName:      "SOT23",
		ModelEmbedded:  true,
		RotX:           10, RotY: 20, RotZ: 30,
		DZ:             0.5,
		StandoffHeight: 0.1,
		OverallHeight:  1.2,
	}
	blocks := encodeComponentBody(original)
	decoded, err := decodeComponentBody(blocks[0])
	if err != nil {
		t.Fatalf("decodeComponentBody: %v", err)
	}
	if decoded.Layer != original.Layer || decoded.ModelID != original.ModelID || decoded.ModelName != original.ModelName {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
	if !decoded.ModelEmbedded {
		t.Error("ModelEmbedded = false, want true")
	}
	if !almostEqual(decoded.OverallHeight, original.OverallHeight) {
		t.Errorf("OverallHeight = %v, want %v", decoded.OverallHeight, original.OverallHeight)
	}
}

func TestComponentBodyMilSuffixConversion(t *testing.T) {
	got := parseMilOrMM("10mil")
	if !almostEqual(got, 0.254) {
		t.Errorf("parseMilOrMM(10mil) = %v, want 0.254", got)
	}
	got = parseMilOrMM("0.5")
	if !almostEqual(got, 0.5) {
		t.Errorf("parseMilOrMM(0.5) = %v, want 0.5", got)
	}
}

func TestDataStreamEndMarkerAlwaysEmitted(t *testing.T) {
	data, err := EncodeDataStream(&pcb.Footprint{Name: "EMPTY"})
	if err != nil {
		t.Fatalf("EncodeDataStream: %v", err)
	}
	if data[len(data)-1] != 0x00 {
		t.Errorf("last byte = %#x, want 0x00", data[len(data)-1])
	}
}

func TestDataStreamIdempotence(t *testing.T) {
	fp := &pcb.Footprint{
		Name: "CHIP_0402",
		Pads: []pcb.Pad{
			{Designator: "1", X: -0.4, Y: 0, Width: 0.5, Height: 0.5, Shape: pcb.Rectangle, Layer: layer.TopLayer},
			{Designator: "2", X: 0.4, Y: 0, Width: 0.5, Height: 0.5, Shape: pcb.Rectangle, Layer: layer.TopLayer},
		},
		Arcs: []pcb.Arc{{Radius: 1, StartAngle: 0, EndAngle: 360, Layer: layer.TopOverlay}},
	}
	encoded, err := EncodeDataStream(fp)
	if err != nil {
		t.Fatalf("EncodeDataStream: %v", err)
	}
	decoded, err := DecodeDataStream(encoded, "test")
	if err != nil {
		t.Fatalf("DecodeDataStream: %v", err)
	}
	if decoded.Name != fp.Name {
		t.Errorf("Name = %q, want %q", decoded.Name, fp.Name)
	}
	if len(decoded.Pads) != 2 {
		t.Fatalf("len(Pads) = %d, want 2", len(decoded.Pads))
	}
	if decoded.Pads[0].X >= 0 || decoded.Pads[1].X <= 0 {
		t.Errorf("pad x-positions should differ in sign: %v, %v", decoded.Pads[0].X, decoded.Pads[1].X)
	}
	if len(decoded.Arcs) != 1 {
		t.Fatalf("len(Arcs) = %d, want 1", len(decoded.Arcs))
	}
}

func TestDataStreamNameEncoding(t *testing.T) {
	// E2E-1's stream begins with this exact 12-byte prefix: an 8-byte
	// outer block (1 string-block length byte + 7 name characters).
	data, err := EncodeDataStream(&pcb.Footprint{Name: "CHIP_04"})
	if err != nil {
		t.Fatalf("EncodeDataStream: %v", err)
	}
	want := []byte{0x08, 0x00, 0x00, 0x00, 0x07, 'C', 'H', 'I', 'P', '_', '0', '4'}
	if len(data) < len(want) {
		t.Fatalf("encoded data too short: %d", len(data))
	}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, data[i], b)
		}
	}
}
