package schcodec

import (
	"strings"

	"github.com/hailam/altiumlib/internal/altiumerr"
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/sch"
)

// DecodeDataStream parses one component's Data stream: a sequence of
// `[length u16 LE][type u16 BE][payload]` records, terminated by a
// zero-length record. Text records (type 0x0000) are dispatched by their
// RECORD=<id> field; binary pin records (type 0x0001) use the fixed pin
// layout.
func DecodeDataStream(data []byte, path string) (*sch.Symbol, error) {
	r := blockio.NewReader(data, path)
	sym := &sch.Symbol{PartCount: 1}

	offset := 0
	for offset < r.Len() {
		length, err := r.U16(offset)
		if err != nil {
			return sym, err
		}
		if length == 0 {
			return sym, nil
		}

		recordType, err := r.U16BE(offset + 2)
		if err != nil {
			return sym, err
		}

		payloadStart := offset + 4
		payload, err := r.Bytes(payloadStart, int(length))
		if err != nil {
			return sym, err
		}
		offset = payloadStart + int(length)

		switch byte(recordType) {
		case BinaryPin:
			pin, err := decodePin(payload)
			if err != nil {
				return sym, err
			}
			sym.Pins = append(sym.Pins, pin)
		default:
			text := strings.TrimRight(string(payload), "\x00")
			props := parsePipeProps(text)
			id := propInt(props, "RECORD", -1)
			decoder, ok := registry[id]
			if !ok {
				continue // unrecognised RECORD id: ignore, not fatal
			}
			if err := decoder.Decode(sym, props); err != nil {
				return sym, err
			}
		}
	}

	return sym, altiumerr.Parse(path, int64(offset), "stream ended without terminating zero-length record")
}

// EncodeDataStream assembles a full Data stream for sym using libRef as
// the LibReference written into the RECORD=1 component header. Write
// order: header; parameters; pins; rectangles; lines; polylines; arcs;
// ellipses; labels; designator (if non-empty); implementation-list anchor
// plus one footprint-model record per footprint (only if any exist);
// terminated by a single u16 LE 0x0000.
func EncodeDataStream(sym *sch.Symbol, libRef string) []byte {
	w := blockio.NewWriter()

	writeTextRecord(w, encodeComponentHeader(sym, libRef))
	for _, p := range sym.Parameters {
		writeTextRecord(w, encodeParameter(p))
	}
	for _, p := range sym.Pins {
		writeBinaryRecord(w, encodePin(p))
	}
	for _, r := range sym.Rectangles {
		writeTextRecord(w, encodeRectangle(r))
	}
	for _, l := range sym.Lines {
		writeTextRecord(w, encodeLine(l))
	}
	for _, p := range sym.Polylines {
		writeTextRecord(w, encodePolyline(p))
	}
	for _, a := range sym.Arcs {
		writeTextRecord(w, encodeArc(a))
	}
	for _, e := range sym.Ellipses {
		writeTextRecord(w, encodeEllipse(e))
	}
	for _, l := range sym.Labels {
		writeTextRecord(w, encodeLabel(l))
	}
	if sym.Designator != "" {
		writeTextRecord(w, encodeDesignator(sym.Designator))
	}
	if len(sym.FootprintModels) > 0 {
		writeTextRecord(w, encodeImplementationAnchor(generateUniqueID()))
		for _, m := range sym.FootprintModels {
			writeTextRecord(w, encodeFootprintModel(m, generateUniqueID()))
		}
	}

	w.U16(0)
	return w.Bytes()
}

func writeTextRecord(w *blockio.Writer, text string) {
	payload := append([]byte(text), 0)
	w.U16(uint16(len(payload)))
	w.U16BE(uint16(TextRecord))
	w.Raw(payload)
}

func writeBinaryRecord(w *blockio.Writer, payload []byte) {
	w.U16(uint16(len(payload)))
	w.U16BE(uint16(BinaryPin))
	w.Raw(payload)
}
