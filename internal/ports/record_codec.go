// Package ports mirrors the small interface-only boundary style the rest
// of this module follows: each codec's extensible, tag-dispatched record
// set (PCB record-type byte, SchLib RECORD=<id>) is described here as an
// interface, and concrete decoders register themselves against it in their
// own package's init().
package ports

import (
	"github.com/hailam/altiumlib/internal/model/pcb"
	"github.com/hailam/altiumlib/internal/model/sch"
)

// PcbRecordDecoder decodes the blocks belonging to one PCB primitive record
// and appends the result to the appropriate collection on fp.
type PcbRecordDecoder interface {
	Decode(fp *pcb.Footprint, blocks [][]byte) error
}

// SchRecordDecoder decodes the lower-cased key/value properties of one
// SchLib text record and applies them to sym.
type SchRecordDecoder interface {
	Decode(sym *sch.Symbol, props map[string]string) error
}
