package cfbio

import (
	"io"
	"strings"

	"github.com/richardlehane/mscfb"

	"github.com/hailam/altiumlib/internal/altiumerr"
)

// Document is a fully-buffered view of a CFB container's streams, keyed
// by their full path ("FileHeader", "R1/Data", "Models/3F2A"). mscfb's
// Reader only walks forward once, so Open drains every entry eagerly
// rather than exposing a streaming API: library files in this domain are
// small enough (a handful of megabytes at most) that holding every
// stream in memory is the simpler trade.
type Document struct {
	streams map[string][]byte
	// components, in the order mscfb yielded their Data stream, for
	// callers that need deterministic iteration (PcbLib has no ordered
	// component list of its own the way SchLib's FileHeader does).
	components []string
}

// Open reads every stream out of the CFB container backed by ra.
func Open(ra io.ReaderAt) (*Document, error) {
	doc, err := mscfb.New(ra)
	if err != nil {
		return nil, altiumerr.InvalidOLE(err.Error())
	}

	d := &Document{streams: make(map[string][]byte)}
	seen := make(map[string]bool)

	for entry, err := doc.Next(); err != io.EOF; entry, err = doc.Next() {
		if err != nil {
			return nil, altiumerr.InvalidOLE(err.Error())
		}

		buf := make([]byte, entry.Size)
		if entry.Size > 0 {
			if _, err := io.ReadFull(doc, buf); err != nil {
				return nil, altiumerr.InvalidOLE("reading stream " + entry.Name + ": " + err.Error())
			}
		}

		key := joinPath(entry.Path, entry.Name)
		d.streams[key] = buf

		if entry.Name == "Data" && len(entry.Path) == 1 && entry.Path[0] != "Models" {
			if !seen[entry.Path[0]] {
				seen[entry.Path[0]] = true
				d.components = append(d.components, entry.Path[0])
			}
		}
	}

	return d, nil
}

func joinPath(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, "/") + "/" + name
}

// Stream returns the raw bytes of the stream at the given path (relative
// to root, "/"-joined), and whether it was present.
func (d *Document) Stream(path string) ([]byte, bool) {
	b, ok := d.streams[path]
	return b, ok
}

// FileHeader returns the root-level FileHeader stream.
func (d *Document) FileHeader() ([]byte, bool) {
	return d.Stream("FileHeader")
}

// ComponentStream returns the named stream ("Data", "Parameters") inside
// the given component's storage.
func (d *Document) ComponentStream(component, stream string) ([]byte, bool) {
	return d.Stream(component + "/" + stream)
}

// Components lists component storage names in the order their Data
// stream was encountered while walking the container.
func (d *Document) Components() []string {
	return append([]string(nil), d.components...)
}

// Model returns the raw bytes of Models/<id>, the embedded 3D body blob.
func (d *Document) Model(id string) ([]byte, bool) {
	return d.Stream("Models/" + id)
}

// ModelIDs lists every id with a stream under Models/.
func (d *Document) ModelIDs() []string {
	var ids []string
	for key := range d.streams {
		if rest, ok := strings.CutPrefix(key, "Models/"); ok && rest != "" {
			ids = append(ids, rest)
		}
	}
	return ids
}
