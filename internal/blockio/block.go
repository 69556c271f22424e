// Package blockio implements the primitive wire operations shared by every
// Altium Data stream: fixed-width little-endian scalars, length-prefixed
// "blocks", and the single-byte-length "string-blocks" used for names and
// designators.
package blockio

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/hailam/altiumlib/internal/altiumerr"
)

// MaxBlockLength is the anti-corruption bound on a single block's payload
// length; anything larger is rejected as a parse error rather than trusting
// a possibly-corrupt length prefix to drive a multi-hundred-megabyte read.
const MaxBlockLength = 100000

// Reader walks a byte slice with explicit offsets, the way every primitive
// decoder in this module is structured: read left to right, bounds-checked
// at each step.
type Reader struct {
	buf  []byte
	path string // stream name, used only for error messages
}

// NewReader wraps buf for sequential decoding. path is carried into any
// error produced so callers can tell which stream failed.
func NewReader(buf []byte, path string) *Reader {
	return &Reader{buf: buf, path: path}
}

// Len reports the total number of bytes available.
func (r *Reader) Len() int { return len(r.buf) }

func (r *Reader) need(at, n int) error {
	if at < 0 || n < 0 || at+n > len(r.buf) {
		return altiumerr.Parse(r.path, int64(at), "read past end of stream")
	}
	return nil
}

// U32 reads a little-endian uint32 at byte offset at.
func (r *Reader) U32(at int) (uint32, error) {
	if err := r.need(at, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[at : at+4]), nil
}

// I32 reads a little-endian int32 at byte offset at.
func (r *Reader) I32(at int) (int32, error) {
	v, err := r.U32(at)
	return int32(v), err
}

// U16 reads a little-endian uint16 at byte offset at.
func (r *Reader) U16(at int) (uint16, error) {
	if err := r.need(at, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[at : at+2]), nil
}

// I16 reads a little-endian int16 at byte offset at.
func (r *Reader) I16(at int) (int16, error) {
	v, err := r.U16(at)
	return int16(v), err
}

// U16BE reads a big-endian uint16 at byte offset at. Used only for the
// SchLib record type tag, which is serialised big-endian unlike everything
// else in the format.
func (r *Reader) U16BE(at int) (uint16, error) {
	if err := r.need(at, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.buf[at : at+2]), nil
}

// F64 reads a little-endian IEEE-754 double at byte offset at.
func (r *Reader) F64(at int) (float64, error) {
	if err := r.need(at, 8); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(r.buf[at : at+8])
	return math.Float64frombits(bits), nil
}

// Byte reads a single byte at offset at.
func (r *Reader) Byte(at int) (byte, error) {
	if err := r.need(at, 1); err != nil {
		return 0, err
	}
	return r.buf[at], nil
}

// Bytes reads n raw bytes starting at offset at.
func (r *Reader) Bytes(at, n int) ([]byte, error) {
	if err := r.need(at, n); err != nil {
		return nil, err
	}
	return r.buf[at : at+n], nil
}

// Block reads a u32-LE length prefix followed by that many bytes, returning
// the payload and the offset immediately following it. Lengths over
// MaxBlockLength are rejected to guard against a corrupt or hostile length
// prefix driving an oversized read.
func (r *Reader) Block(at int) (payload []byte, next int, err error) {
	n, err := r.U32(at)
	if err != nil {
		return nil, 0, err
	}
	if n > MaxBlockLength {
		return nil, 0, altiumerr.Parse(r.path, int64(at), "block length exceeds sanity bound")
	}
	start := at + 4
	if err := r.need(start, int(n)); err != nil {
		return nil, 0, err
	}
	return r.buf[start : start+int(n)], start + int(n), nil
}

// win1252Decoder and win1252Encoder are shared, stateless, and safe for
// concurrent use, so a single package-level instance is used everywhere.
var (
	win1252Decoder = charmap.Windows1252.NewDecoder()
	win1252Encoder = charmap.Windows1252.NewEncoder()
)

// StringBlock interprets payload as a string-block: a one-byte length
// prefix n, followed by n bytes of Windows-1252 text, decoded to UTF-8 with
// lossy replacement of anything Windows-1252 cannot represent.
func StringBlock(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", nil
	}
	n := int(payload[0])
	if 1+n > len(payload) {
		n = len(payload) - 1
	}
	raw := payload[1 : 1+n]
	out, err := win1252Decoder.Bytes(raw)
	if err != nil {
		// Windows-1252 decoding is total over single bytes; this should be
		// unreachable, but degrade to a lossy manual pass rather than fail.
		return lossyLatin1(raw), nil
	}
	return string(out), nil
}

func lossyLatin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

// Writer accumulates encoded bytes for a Data stream the way every
// primitive encoder in this module is structured: append scalars and
// blocks left to right into a single growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer ready for appends.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// U32 appends v as a little-endian uint32.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I32 appends v as a little-endian int32.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U16 appends v as a little-endian uint16.
func (w *Writer) U16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I16 appends v as a little-endian int16.
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

// U16BE appends v as a big-endian uint16, for the SchLib record type tag.
func (w *Writer) U16BE(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// F64 appends v as a little-endian IEEE-754 double.
func (w *Writer) F64(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.buf = append(w.buf, b[:]...)
}

// Byte appends a single raw byte.
func (w *Writer) Byte(b byte) { w.buf = append(w.buf, b) }

// Raw appends b verbatim, with no length prefix.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// Block appends payload prefixed with its own u32-LE length.
func (w *Writer) Block(payload []byte) {
	w.U32(uint32(len(payload)))
	w.buf = append(w.buf, payload...)
}

// StringBlockBytes encodes s to Windows-1252 (lossy for characters outside that
// code page) and appends it as a string-block: one length byte followed by
// the encoded bytes. The contract is s's encoded form is at most 255 bytes;
// longer values are truncated rather than overflowing the length byte.
func StringBlockBytes(s string) []byte {
	enc, err := win1252Encoder.String(s)
	if err != nil {
		enc = lossyToLatin1(s)
	}
	if len(enc) > 255 {
		enc = enc[:255]
	}
	out := make([]byte, 1+len(enc))
	out[0] = byte(len(enc))
	copy(out[1:], enc)
	return out
}

func lossyToLatin1(s string) string {
	runes := []rune(s)
	b := make([]byte, 0, len(runes))
	for _, r := range runes {
		if r > 0xFF {
			b = append(b, '?')
			continue
		}
		b = append(b, byte(r))
	}
	return string(b)
}

// StringBlock appends s as a string-block (see StringBlockBytes).
func (w *Writer) StringBlock(s string) {
	w.Raw(StringBlockBytes(s))
}
