// Package pcblib assembles and serialises a PcbLib: the CFB container
// holding a FileHeader stream, one storage per footprint (Data plus an
// optional Parameters stream), and an optional root Models storage of
// embedded 3D-model blobs.
package pcblib

import (
	"bytes"
	"compress/zlib"
	"io"
	"log"
	"strings"

	"github.com/hailam/altiumlib/internal/altiumerr"
	"github.com/hailam/altiumlib/internal/cfbio"
	"github.com/hailam/altiumlib/internal/fileheader"
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/pcbcodec"
)

// Library is the in-memory form of a PcbLib: an ordered footprint list
// plus the embedded 3D-model blobs referenced by ComponentBody.ModelID.
type Library struct {
	Footprints []pcb.Footprint
	Models     map[string][]byte
}

// Footprint looks up a footprint by name.
func (l *Library) Footprint(name string) (*pcb.Footprint, error) {
	for i := range l.Footprints {
		if l.Footprints[i].Name == name {
			return &l.Footprints[i], nil
		}
	}
	return nil, altiumerr.ComponentNotFound(name)
}

// Open reads a PcbLib out of the CFB container backed by ra. A footprint
// whose Data stream fails to decode is logged and skipped; the rest of
// the library still loads. A failure parsing FileHeader itself is fatal.
func Open(ra io.ReaderAt) (*Library, error) {
	doc, err := cfbio.Open(ra)
	if err != nil {
		return nil, err
	}

	header, ok := doc.FileHeader()
	if !ok {
		return nil, altiumerr.MissingStream("FileHeader")
	}
	if _, err := fileheader.DecodePcbHeader(header); err != nil {
		return nil, err
	}

	lib := &Library{Models: make(map[string][]byte)}

	for _, name := range doc.Components() {
		data, ok := doc.ComponentStream(name, "Data")
		if !ok {
			log.Printf("pcblib: component %q has no Data stream, skipping", name)
			continue
		}
		fp, err := pcbcodec.DecodeDataStream(data, name+"/Data")
		if err != nil {
			log.Printf("pcblib: skipping component %q: %v", name, err)
			continue
		}
		if params, ok := doc.ComponentStream(name, "Parameters"); ok {
			applyParameters(fp, params)
		}
		lib.Footprints = append(lib.Footprints, *fp)
	}

	for _, id := range doc.ModelIDs() {
		blob, _ := doc.Model(id)
		inflated, err := inflateModel(blob)
		if err != nil {
			log.Printf("pcblib: dropping model %q: %v", id, err)
			continue
		}
		lib.Models[id] = inflated
	}

	return lib, nil
}

// Write serialises the library to w as a new CFB container.
func (l *Library) Write(w io.Writer) error {
	streams := []cfbio.Stream{
		{Name: "FileHeader", Data: fileheader.EncodePcbHeader(len(l.Footprints))},
	}

	for _, fp := range l.Footprints {
		data, err := pcbcodec.EncodeDataStream(&fp)
		if err != nil {
			return err
		}
		streams = append(streams,
			cfbio.Stream{Path: []string{fp.Name}, Name: "Data", Data: data},
			cfbio.Stream{Path: []string{fp.Name}, Name: "Parameters", Data: encodeParameters(fp)},
		)
	}

	for id, blob := range l.Models {
		streams = append(streams, cfbio.Stream{Path: []string{"Models"}, Name: id, Data: deflateModel(blob)})
	}

	return cfbio.Write(w, streams)
}

// applyParameters reads the Parameters stream's DESCRIPTION key into
// fp.Description; other keys are not currently surfaced on read.
func applyParameters(fp *pcb.Footprint, data []byte) {
	for _, part := range strings.Split(string(data), "|") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if strings.EqualFold(key, "DESCRIPTION") {
			fp.Description = value
		}
	}
}

func encodeParameters(fp pcb.Footprint) []byte {
	return []byte("|PATTERN=" + fp.Name + "|DESCRIPTION=" + fp.Description + "|")
}

// inflateModel decompresses a Models/<id> blob. Altium stores embedded
// STEP models zlib-compressed.
func inflateModel(blob []byte) ([]byte, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	r, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, altiumerr.Compression("inflating model blob", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, altiumerr.Compression("inflating model blob", err)
	}
	return out, nil
}

func deflateModel(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}
