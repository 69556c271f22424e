// Package schlib assembles and serialises a SchLib: the CFB container
// holding a FileHeader stream carrying the ordered component list, and
// one storage per symbol with a single Data stream.
package schlib

import (
	"io"
	"log"

	"github.com/hailam/altiumlib/internal/altiumerr"
	"github.com/hailam/altiumlib/internal/cfbio"
	"github.com/hailam/altiumlib/internal/fileheader"
	"github.com/hailam/altiumlib/internal/model/sch"
	"github.com/hailam/altiumlib/internal/schcodec"
)

// Library is the in-memory form of a SchLib.
type Library struct {
	Symbols []sch.Symbol
}

// Symbol looks up a symbol by name.
func (l *Library) Symbol(name string) (*sch.Symbol, error) {
	for i := range l.Symbols {
		if l.Symbols[i].Name == name {
			return &l.Symbols[i], nil
		}
	}
	return nil, altiumerr.ComponentNotFound(name)
}

// Open reads a SchLib out of the CFB container backed by ra. FileHeader
// drives which component storages are visited and in what order; a
// symbol whose Data stream fails to decode is logged and skipped.
func Open(ra io.ReaderAt) (*Library, error) {
	doc, err := cfbio.Open(ra)
	if err != nil {
		return nil, err
	}

	header, ok := doc.FileHeader()
	if !ok {
		return nil, altiumerr.MissingStream("FileHeader")
	}
	entries, err := fileheader.DecodeSchHeader(header)
	if err != nil {
		return nil, err
	}

	lib := &Library{}
	for _, entry := range entries {
		data, ok := doc.ComponentStream(entry.Name, "Data")
		if !ok {
			log.Printf("schlib: component %q has no Data stream, skipping", entry.Name)
			continue
		}
		sym, err := schcodec.DecodeDataStream(data, entry.Name+"/Data")
		if err != nil {
			log.Printf("schlib: skipping component %q: %v", entry.Name, err)
			continue
		}
		sym.Name = entry.Name
		if sym.Description == "" {
			sym.Description = entry.Description
		}
		lib.Symbols = append(lib.Symbols, *sym)
	}

	return lib, nil
}

// Write serialises the library to w as a new CFB container.
func (l *Library) Write(w io.Writer) error {
	entries := make([]fileheader.ComponentEntry, 0, len(l.Symbols))
	for _, sym := range l.Symbols {
		entries = append(entries, fileheader.ComponentEntry{
			Name:        sym.Name,
			Description: sym.Description,
			PartCount:   sym.PartCount,
		})
	}

	streams := []cfbio.Stream{
		{Name: "FileHeader", Data: fileheader.EncodeSchHeader(entries)},
	}
	for _, sym := range l.Symbols {
		streams = append(streams, cfbio.Stream{
			Path: []string{sym.Name}, Name: "Data",
			Data: schcodec.EncodeDataStream(&sym, sym.Name),
		})
	}

	return cfbio.Write(w, streams)
}
