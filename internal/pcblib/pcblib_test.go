package pcblib

import (
	"bytes"
	"testing"

	"github.com/hailam/altiumlib/internal/layer"
	"github.com/hailam/altiumlib/internal/model/pcb"
)

func TestLibraryRoundTrip(t *testing.T) {
	hole := 0.3
	lib := &Library{
		Models: map[string][]byte{
			"3F2A": {0xDE, 0xAD, 0xBE, 0xEF},
		},
		Footprints: []pcb.Footprint{
			{
				Name:        "CHIP_04",
				Description: "0402 chip resistor",
				Pads: []pcb.Pad{
					{Designator: "1", X: -0.5, Y: 0, Width: 0.6, Height: 0.5, HoleSize: &hole, Layer: layer.TopLayer},
					{Designator: "2", X: 0.5, Y: 0, Width: 0.6, Height: 0.5, Layer: layer.TopLayer},
				},
				Arcs: []pcb.Arc{{X: 0, Y: 0, Radius: 1, StartAngle: 0, EndAngle: 360, Layer: layer.TopOverlay}},
			},
			{Name: "SOT23", Description: "3-pin transistor"},
		},
	}

	var buf bytes.Buffer
	if err := lib.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	decoded, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(decoded.Footprints) != 2 {
		t.Fatalf("len(Footprints) = %d, want 2", len(decoded.Footprints))
	}

	chip, err := decoded.Footprint("CHIP_04")
	if err != nil {
		t.Fatalf("Footprint(CHIP_04): %v", err)
	}
	if chip.Description != "0402 chip resistor" {
		t.Errorf("Description = %q", chip.Description)
	}
	if len(chip.Pads) != 2 {
		t.Errorf("len(Pads) = %d, want 2", len(chip.Pads))
	}
	if len(chip.Arcs) != 1 {
		t.Errorf("len(Arcs) = %d, want 1", len(chip.Arcs))
	}

	model, ok := decoded.Models["3F2A"]
	if !ok {
		t.Fatal("model 3F2A missing after round trip")
	}
	if !bytes.Equal(model, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("model bytes = %v", model)
	}

	if _, err := decoded.Footprint("NOPE"); err == nil {
		t.Fatal("expected ComponentNotFound for missing footprint")
	}
}

func TestLibraryWithManyFootprints(t *testing.T) {
	lib := &Library{}
	for i := 0; i < 40; i++ {
		lib.Footprints = append(lib.Footprints, pcb.Footprint{Name: "FP" + string(rune('A'+i%26)) + string(rune('0'+i/26))})
	}

	var buf bytes.Buffer
	if err := lib.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	decoded, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(decoded.Footprints) != 40 {
		t.Errorf("len(Footprints) = %d, want 40", len(decoded.Footprints))
	}
}
