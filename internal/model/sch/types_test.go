package sch

import "testing"

func TestOrientationFlagsRoundTrip(t *testing.T) {
	for _, o := range []PinOrientation{Right, Left, Up, Down} {
		rotated, flipped := o.Flags()
		if got := OrientationFromFlags(rotated, flipped); got != o {
			t.Errorf("OrientationFromFlags(%v,%v) = %v, want %v", rotated, flipped, got, o)
		}
	}
}

func TestElectricalTypeRoundTrip(t *testing.T) {
	for id := byte(0); id <= 7; id++ {
		if id == 4 {
			continue // 4 and "unknown" both decode to Passive, tested separately
		}
		got := PinElectricalTypeFromID(id)
		if got.ID() != id {
			t.Errorf("id %d round trip: got ID() = %d", id, got.ID())
		}
	}
	if PinElectricalTypeFromID(4) != Passive {
		t.Errorf("id 4 should decode to Passive")
	}
	if PinElectricalTypeFromID(200) != Passive {
		t.Errorf("unknown id should decode to Passive")
	}
}

func TestPinSymbolRoundTrip(t *testing.T) {
	for id := byte(0); id <= 21; id++ {
		s := PinSymbolFromID(id)
		if s.ID() != id {
			t.Errorf("id %d round trip: got ID() = %d", id, s.ID())
		}
	}
	if PinSymbolFromID(200) != SymbolNone {
		t.Errorf("unknown id should decode to SymbolNone")
	}
}
