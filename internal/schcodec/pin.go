package schcodec

import (
	"github.com/hailam/altiumlib/internal/blockio"
	"github.com/hailam/altiumlib/internal/model/sch"
)

// pinRecordType is the constant value found at offset 0 of every binary
// pin record.
const pinRecordType int32 = 2

const (
	flagRotated        = 1 << 0
	flagFlipped        = 1 << 1
	flagHidden         = 1 << 2
	flagShowName       = 1 << 3
	flagShowDesignator = 1 << 4
)

// decodePin parses one binary pin record's fixed layout.
func decodePin(payload []byte) (sch.Pin, error) {
	var p sch.Pin
	r := blockio.NewReader(payload, "pin")

	ownerPartID, err := r.I16(5)
	if err != nil {
		return p, err
	}
	p.OwnerPartID = int(ownerPartID)

	innerEdge, err := r.Byte(8)
	if err != nil {
		return p, err
	}
	outerEdge, err := r.Byte(9)
	if err != nil {
		return p, err
	}
	inside, err := r.Byte(10)
	if err != nil {
		return p, err
	}
	outside, err := r.Byte(11)
	if err != nil {
		return p, err
	}
	p.SymbolInnerEdge = sch.PinSymbolFromID(innerEdge)
	p.SymbolOuterEdge = sch.PinSymbolFromID(outerEdge)
	p.SymbolInside = sch.PinSymbolFromID(inside)
	p.SymbolOutside = sch.PinSymbolFromID(outside)

	descLen, err := r.Byte(12)
	if err != nil {
		return p, err
	}
	descBytes, err := r.Bytes(14, int(descLen))
	if err != nil {
		return p, err
	}
	p.Description = string(descBytes)

	d := 14 + int(descLen)
	electricalType, err := r.Byte(d)
	if err != nil {
		return p, err
	}
	p.ElectricalType = sch.PinElectricalTypeFromID(electricalType)

	flags, err := r.Byte(d + 1)
	if err != nil {
		return p, err
	}
	p.Orientation = sch.OrientationFromFlags(flags&flagRotated != 0, flags&flagFlipped != 0)
	p.Hidden = flags&flagHidden != 0
	p.ShowName = flags&flagShowName != 0
	p.ShowDesignator = flags&flagShowDesignator != 0

	length, err := r.I16(d + 2)
	if err != nil {
		return p, err
	}
	p.Length = int(length)

	x, err := r.I16(d + 4)
	if err != nil {
		return p, err
	}
	y, err := r.I16(d + 6)
	if err != nil {
		return p, err
	}
	p.X, p.Y = int(x), int(y)

	colour, err := r.U32(d + 8)
	if err != nil {
		return p, err
	}
	p.Colour = colour

	nameLenAt := d + 12
	nameLen, err := r.Byte(nameLenAt)
	if err != nil {
		return p, err
	}
	nameBytes, err := r.Bytes(nameLenAt+1, int(nameLen))
	if err != nil {
		return p, err
	}
	p.Name = string(nameBytes)

	desigLenAt := nameLenAt + 1 + int(nameLen)
	desigLen, err := r.Byte(desigLenAt)
	if err != nil {
		return p, err
	}
	desigBytes, err := r.Bytes(desigLenAt+1, int(desigLen))
	if err != nil {
		return p, err
	}
	p.Designator = string(desigBytes)

	return p, nil
}

// encodePin mirrors decodePin's layout exactly.
func encodePin(p sch.Pin) []byte {
	w := blockio.NewWriter()
	w.I32(pinRecordType)
	w.Byte(0) // unknown, offset 4
	w.I16(int16(p.OwnerPartID))
	w.Byte(0) // display mode, not modelled

	w.Byte(p.SymbolInnerEdge.ID())
	w.Byte(p.SymbolOuterEdge.ID())
	w.Byte(p.SymbolInside.ID())
	w.Byte(p.SymbolOutside.ID())

	desc := []byte(p.Description)
	w.Byte(byte(len(desc)))
	w.Byte(0) // unknown, offset 13
	w.Raw(desc)

	w.Byte(p.ElectricalType.ID())

	var flags byte
	rotated, flipped := p.Orientation.Flags()
	if rotated {
		flags |= flagRotated
	}
	if flipped {
		flags |= flagFlipped
	}
	if p.Hidden {
		flags |= flagHidden
	}
	if p.ShowName {
		flags |= flagShowName
	}
	if p.ShowDesignator {
		flags |= flagShowDesignator
	}
	w.Byte(flags)

	w.I16(int16(p.Length))
	w.I16(int16(p.X))
	w.I16(int16(p.Y))
	w.U32(p.Colour)

	name := []byte(p.Name)
	w.Byte(byte(len(name)))
	w.Raw(name)

	designator := []byte(p.Designator)
	w.Byte(byte(len(designator)))
	w.Raw(designator)

	return w.Bytes()
}
