package fileheader

import "testing"

func TestPcbHeaderRoundTrip(t *testing.T) {
	data := EncodePcbHeader(2)
	weight, err := DecodePcbHeader(data)
	if err != nil {
		t.Fatalf("DecodePcbHeader: %v", err)
	}
	if weight != 2 {
		t.Errorf("weight = %d, want 2", weight)
	}
}

func TestSchHeaderRoundTripE2E6(t *testing.T) {
	components := []ComponentEntry{
		{Name: "A", Description: "first"},
		{Name: "B", Description: "second"},
	}
	data := EncodeSchHeader(components)
	decoded, err := DecodeSchHeader(data)
	if err != nil {
		t.Fatalf("DecodeSchHeader: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len(decoded) = %d, want 2", len(decoded))
	}
	if decoded[0].Name != "A" || decoded[1].Name != "B" {
		t.Errorf("names = %q, %q", decoded[0].Name, decoded[1].Name)
	}
}

func TestSchHeaderPartCountStoredPlusOne(t *testing.T) {
	data := EncodeSchHeader([]ComponentEntry{{Name: "MULTI", PartCount: 2}})
	decoded, err := DecodeSchHeader(data)
	if err != nil {
		t.Fatalf("DecodeSchHeader: %v", err)
	}
	if decoded[0].PartCount != 2 {
		t.Errorf("PartCount = %d, want 2", decoded[0].PartCount)
	}
}

func TestUnrecognisedHeaderIsUnsupportedVersion(t *testing.T) {
	if _, err := DecodePcbHeader(wrap("NOTAHEADER=true|")); err == nil {
		t.Fatal("expected error for missing HEADER field")
	}
}
