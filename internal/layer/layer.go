// Package layer provides the bidirectional mapping between the single-byte
// layer IDs used on disk and the named Layer enumeration Altium exposes to
// its users.
package layer

// Layer is the closed set of PCB layers a primitive can live on.
type Layer int

const (
	// Unknown is the zero value; never produced by FromID (it falls back to
	// MultiLayer), only used for an explicitly empty Layer field.
	Unknown Layer = iota
	TopLayer
	BottomLayer
	TopOverlay
	BottomOverlay
	TopPaste
	BottomPaste
	TopSolder
	BottomSolder
	KeepOut
	Mechanical1
	TopAssembly
	BottomAssembly
	TopCourtyard
	BottomCourtyard
	Top3DBody
	Bottom3DBody
	Mechanical2
	Mechanical13
	Mechanical15
	MultiLayer
)

var names = map[Layer]string{
	TopLayer:        "TopLayer",
	BottomLayer:     "BottomLayer",
	TopOverlay:      "TopOverlay",
	BottomOverlay:   "BottomOverlay",
	TopPaste:        "TopPaste",
	BottomPaste:     "BottomPaste",
	TopSolder:       "TopSolder",
	BottomSolder:    "BottomSolder",
	KeepOut:         "KeepOut",
	Mechanical1:     "Mechanical1",
	TopAssembly:     "TopAssembly",
	BottomAssembly:  "BottomAssembly",
	TopCourtyard:    "TopCourtyard",
	BottomCourtyard: "BottomCourtyard",
	Top3DBody:       "Top3DBody",
	Bottom3DBody:    "Bottom3DBody",
	Mechanical2:     "Mechanical2",
	Mechanical13:    "Mechanical13",
	Mechanical15:    "Mechanical15",
	MultiLayer:      "MultiLayer",
}

func (l Layer) String() string {
	if s, ok := names[l]; ok {
		return s
	}
	return "Unknown"
}

// toID is the canonical, total layer_to_id table. Every Layer maps to
// exactly one byte. Mechanical2 and Mechanical13 are each the canonical
// representative of a disk-side cluster of IDs that all decode back to the
// same Layer (see fromID) — encoding is total but not injective there.
var toID = map[Layer]byte{
	TopLayer:        1,
	BottomLayer:     32,
	TopOverlay:      33,
	BottomOverlay:   34,
	TopPaste:        35,
	BottomPaste:     36,
	TopSolder:       37,
	BottomSolder:    38,
	KeepOut:         56,
	Mechanical1:     57,
	TopAssembly:     58,
	BottomAssembly:  59,
	TopCourtyard:    60,
	BottomCourtyard: 61,
	Top3DBody:       62,
	Bottom3DBody:    63,
	Mechanical2:     64,
	Mechanical13:    69,
	Mechanical15:    71,
	MultiLayer:      74,
}

// fromID is built from toID plus the lossy mechanical clusters: disk IDs
// 64-68 all decode to Mechanical2, and 69-70 both decode to Mechanical13.
// Anything else not in toID's image decodes to MultiLayer.
var fromID = buildFromID()

func buildFromID() map[byte]Layer {
	m := make(map[byte]Layer, len(toID)+8)
	for l, id := range toID {
		m[id] = l
	}
	for id := byte(64); id <= 68; id++ {
		m[id] = Mechanical2
	}
	m[69] = Mechanical13
	m[70] = Mechanical13
	return m
}

// FromID decodes a disk byte to a Layer. IDs with no entry fall back to
// MultiLayer, matching Altium's own tolerant behaviour for layers a newer
// file format introduced.
func FromID(id byte) Layer {
	if l, ok := fromID[id]; ok {
		return l
	}
	return MultiLayer
}

// ToID encodes a Layer to its canonical disk byte. Every named Layer has
// exactly one entry; Unknown, which has none, encodes as MultiLayer's byte.
func ToID(l Layer) byte {
	if id, ok := toID[l]; ok {
		return id
	}
	return toID[MultiLayer]
}
