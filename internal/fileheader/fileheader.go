// Package fileheader implements the FileHeaderCodec (spec component C8):
// the pipe-delimited metadata stream every library carries at
// `/FileHeader`, in both its minimal PcbLib form and its richer SchLib
// form.
package fileheader

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/hailam/altiumlib/internal/altiumerr"
)

// ComponentEntry is one row of the SchLib component list a FileHeader
// carries: name, description, and logical part count.
type ComponentEntry struct {
	Name        string
	Description string
	PartCount   int
}

const pcbHeaderMagic = "HEADER=Protel for Windows - PCB Library"
const schHeaderMagic = "HEADER=Protel for Windows - Schematic Library Editor Binary File Version 5.0"

// EncodePcbHeader builds the `[length][text]` FileHeader stream for a
// PcbLib: weight is the component count, which is what Altium's own
// minimal header reports under WEIGHT.
func EncodePcbHeader(weight int) []byte {
	text := pcbHeaderMagic + "|WEIGHT=" + strconv.Itoa(weight) + "|"
	return wrap(text)
}

// DecodePcbHeader extracts the WEIGHT field from a PcbLib FileHeader
// stream. A missing HEADER field is an UnsupportedVersion error; a HEADER
// that doesn't match the PcbLib magic (e.g. a SchLib opened as a PcbLib)
// is a WrongFileType error, so callers can fall back to the other kind.
func DecodePcbHeader(data []byte) (weight int, err error) {
	text, err := unwrap(data)
	if err != nil {
		return 0, err
	}
	props := parseProps(text)
	header, ok := props["header"]
	if !ok {
		return 0, altiumerr.UnsupportedVersion("missing HEADER field")
	}
	if !strings.HasPrefix(text, pcbHeaderMagic) {
		return 0, altiumerr.WrongFileType("PcbLib", header)
	}
	return propInt(props, "weight", 0), nil
}

// EncodeSchHeader builds the rich SchLib FileHeader stream: fixed
// metadata preamble, CompCount, and one LibRef/CompDescr/PartCount triple
// per component, in the given order.
func EncodeSchHeader(components []ComponentEntry) []byte {
	var b strings.Builder
	b.WriteString(schHeaderMagic)
	b.WriteByte('|')
	b.WriteString("Weight=1|")
	b.WriteString("MinorVersion=1|")
	b.WriteString("FontIdCount=1|")
	b.WriteString("FontName1=Times New Roman|")
	b.WriteString("Size1=10|")
	b.WriteString("SheetStyle=0|")
	b.WriteString("SystemFont=1|")
	b.WriteString("CompCount=")
	b.WriteString(strconv.Itoa(len(components)))
	b.WriteByte('|')
	for i, c := range components {
		partCount := c.PartCount
		if partCount < 1 {
			partCount = 1
		}
		b.WriteString("LibRef")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('=')
		b.WriteString(c.Name)
		b.WriteByte('|')
		b.WriteString("CompDescr")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('=')
		b.WriteString(c.Description)
		b.WriteByte('|')
		b.WriteString("PartCount")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(partCount + 1))
		b.WriteByte('|')
	}
	return wrap(b.String())
}

// DecodeSchHeader extracts CompCount and then, for i in 0..CompCount, the
// LibRef<i>/CompDescr<i>/PartCount<i> triple. Unrecognised keys are
// ignored; lookups are case-insensitive. A HEADER that doesn't match the
// SchLib magic (e.g. a PcbLib opened as a SchLib) is a WrongFileType
// error, so callers can fall back to the other kind.
func DecodeSchHeader(data []byte) ([]ComponentEntry, error) {
	text, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	props := parseProps(text)
	header, ok := props["header"]
	if !ok {
		return nil, altiumerr.UnsupportedVersion("missing HEADER field")
	}
	if !strings.HasPrefix(text, schHeaderMagic) {
		return nil, altiumerr.WrongFileType("SchLib", header)
	}

	count := propInt(props, "compcount", 0)
	entries := make([]ComponentEntry, 0, count)
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		partCount := propInt(props, "partcount"+idx, 2) - 1
		if partCount < 1 {
			partCount = 1
		}
		entries = append(entries, ComponentEntry{
			Name:        props["libref"+idx],
			Description: props["compdescr"+idx],
			PartCount:   partCount,
		})
	}
	return entries, nil
}

func wrap(text string) []byte {
	out := make([]byte, 4+len(text))
	binary.LittleEndian.PutUint32(out[:4], uint32(len(text)))
	copy(out[4:], text)
	return out
}

func unwrap(data []byte) (string, error) {
	if len(data) < 4 {
		return "", altiumerr.Parse("FileHeader", 0, "stream too short for length prefix")
	}
	n := binary.LittleEndian.Uint32(data[:4])
	if int(n) > len(data)-4 {
		return "", altiumerr.Parse("FileHeader", 4, "declared length exceeds stream size")
	}
	return string(data[4 : 4+n]), nil
}

func parseProps(s string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(s, "|") {
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[strings.ToLower(k)] = v
	}
	return out
}

func propInt(props map[string]string, key string, fallback int) int {
	v, ok := props[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
