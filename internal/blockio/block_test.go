package blockio

import (
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U32(0xDEADBEEF)
	w.I32(-12345)
	w.F64(3.14159265)
	w.U16(0xBEEF)
	w.I16(-42)

	r := NewReader(w.Bytes(), "test")
	if v, err := r.U32(0); err != nil || v != 0xDEADBEEF {
		t.Fatalf("U32 = %v, %v", v, err)
	}
	if v, err := r.I32(4); err != nil || v != -12345 {
		t.Fatalf("I32 = %v, %v", v, err)
	}
	if v, err := r.F64(8); err != nil || v != 3.14159265 {
		t.Fatalf("F64 = %v, %v", v, err)
	}
	if v, err := r.U16(16); err != nil || v != 0xBEEF {
		t.Fatalf("U16 = %v, %v", v, err)
	}
	if v, err := r.I16(18); err != nil || v != -42 {
		t.Fatalf("I16 = %v, %v", v, err)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Block([]byte("hello"))
	w.Block([]byte{})
	w.Block([]byte("world!"))

	r := NewReader(w.Bytes(), "test")
	p1, next, err := r.Block(0)
	if err != nil || string(p1) != "hello" {
		t.Fatalf("Block(0) = %q, %v", p1, err)
	}
	p2, next, err := r.Block(next)
	if err != nil || len(p2) != 0 {
		t.Fatalf("Block(empty) = %q, %v", p2, err)
	}
	p3, _, err := r.Block(next)
	if err != nil || string(p3) != "world!" {
		t.Fatalf("Block(2) = %q, %v", p3, err)
	}
}

func TestBlockLengthSanityBound(t *testing.T) {
	w := NewWriter()
	w.U32(MaxBlockLength + 1)
	r := NewReader(w.Bytes(), "test")
	if _, _, err := r.Block(0); err == nil {
		t.Fatal("expected error for oversized block length")
	}
}

func TestStringBlockRoundTrip(t *testing.T) {
	payload := StringBlockBytes("R1")
	s, err := StringBlock(payload)
	if err != nil || s != "R1" {
		t.Fatalf("StringBlock = %q, %v", s, err)
	}
}

func TestStringBlockEmpty(t *testing.T) {
	s, err := StringBlock(nil)
	if err != nil || s != "" {
		t.Fatalf("StringBlock(nil) = %q, %v", s, err)
	}
	s, err = StringBlock(StringBlockBytes(""))
	if err != nil || s != "" {
		t.Fatalf("StringBlock(empty) = %q, %v", s, err)
	}
}

func TestReadPastEndIsParseError(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, "short")
	if _, err := r.U32(0); err == nil {
		t.Fatal("expected parse error reading past end")
	}
}
