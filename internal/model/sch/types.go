// Package sch holds the plain data types decoded from and encoded to a
// SchLib component's Data stream: Symbol and its primitive collections.
package sch

// PinOrientation is derived from the (rotated, flipped) bit pair stored in
// a binary pin record.
type PinOrientation int

const (
	Right PinOrientation = iota // (rotated=false, flipped=false)
	Left                        // (false, true)
	Up                          // (true, false)
	Down                        // (true, true)
)

func (o PinOrientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Right"
	}
}

// OrientationFromFlags maps the rotated/flipped bits read from a pin's
// flags byte to a PinOrientation.
func OrientationFromFlags(rotated, flipped bool) PinOrientation {
	switch {
	case !rotated && !flipped:
		return Right
	case !rotated && flipped:
		return Left
	case rotated && !flipped:
		return Up
	default:
		return Down
	}
}

// Flags returns the (rotated, flipped) bit pair this orientation encodes to.
func (o PinOrientation) Flags() (rotated, flipped bool) {
	switch o {
	case Right:
		return false, false
	case Left:
		return false, true
	case Up:
		return true, false
	default:
		return true, true
	}
}

// PinElectricalType is the closed set of electrical roles a pin can have.
type PinElectricalType int

const (
	Input PinElectricalType = iota
	Bidirectional
	Output
	OpenCollector
	Passive // also the fallback for ids outside 0-7
	HiZ
	OpenEmitter
	Power
)

func (t PinElectricalType) String() string {
	switch t {
	case Input:
		return "Input"
	case Bidirectional:
		return "Bidirectional"
	case Output:
		return "Output"
	case OpenCollector:
		return "OpenCollector"
	case HiZ:
		return "HiZ"
	case OpenEmitter:
		return "OpenEmitter"
	case Power:
		return "Power"
	default:
		return "Passive"
	}
}

// PinElectricalTypeFromID decodes the 0-7 disk id; any other value, and id
// 4 itself, both decode to Passive.
func PinElectricalTypeFromID(id byte) PinElectricalType {
	switch id {
	case 0:
		return Input
	case 1:
		return Bidirectional
	case 2:
		return Output
	case 3:
		return OpenCollector
	case 5:
		return HiZ
	case 6:
		return OpenEmitter
	case 7:
		return Power
	default:
		return Passive
	}
}

// ID encodes t back to its disk byte.
func (t PinElectricalType) ID() byte {
	switch t {
	case Input:
		return 0
	case Bidirectional:
		return 1
	case Output:
		return 2
	case OpenCollector:
		return 3
	case HiZ:
		return 5
	case OpenEmitter:
		return 6
	case Power:
		return 7
	default:
		return 4
	}
}

// PinSymbol is the closed set of IEC pin decoration glyphs, ids 0-21.
// Unknown ids decode to None.
type PinSymbol int

const (
	SymbolNone PinSymbol = iota
	SymbolDot
	SymbolRightLeftSignalFlow
	SymbolClock
	SymbolActiveLowInput
	SymbolAnalogSignalIn
	SymbolNotLogicConnection
	SymbolPostponedOutput
	SymbolOpenCollector
	SymbolHiZ
	SymbolHighCurrent
	SymbolPulse
	SymbolSchmitt
	SymbolActiveLowOutput
	SymbolOpenCollectorPullUp
	SymbolOpenEmitter
	SymbolOpenEmitterPullUp
	SymbolDigitalSignalIn
	SymbolShiftLeft
	SymbolOpenOutput
	SymbolLeftRightSignalFlow
	SymbolBidirectionalSignalFlow
)

// PinSymbolFromID decodes a 0-21 disk id; anything else decodes to
// SymbolNone.
func PinSymbolFromID(id byte) PinSymbol {
	if id <= byte(SymbolBidirectionalSignalFlow) {
		return PinSymbol(id)
	}
	return SymbolNone
}

// ID encodes s back to its disk byte.
func (s PinSymbol) ID() byte {
	if s < SymbolNone || s > SymbolBidirectionalSignalFlow {
		return byte(SymbolNone)
	}
	return byte(s)
}

// Pin is one schematic pin, in schematic units (a dimensionless integer
// grid, not converted to millimetres).
type Pin struct {
	Name           string
	Designator     string
	X, Y           int
	Length         int
	Orientation    PinOrientation
	ElectricalType PinElectricalType
	Hidden         bool
	ShowName       bool
	ShowDesignator bool
	Description    string
	OwnerPartID    int
	Colour         uint32

	SymbolInnerEdge PinSymbol
	SymbolOuterEdge PinSymbol
	SymbolInside    PinSymbol
	SymbolOutside   PinSymbol
}

// Rectangle is a RECORD=14 primitive.
type Rectangle struct {
	X1, Y1    int
	X2, Y2    int
	LineWidth int
	Color     uint32
	AreaColor uint32
}

// Line is a RECORD=13 primitive.
type Line struct {
	X1, Y1    int
	X2, Y2    int
	LineWidth int
	Color     uint32
}

// Point is one vertex of a Polyline.
type Point struct {
	X, Y int
}

// Polyline is a RECORD=6 primitive.
type Polyline struct {
	Points    []Point
	LineWidth int
	Color     uint32
}

// Arc is a RECORD=12 primitive, angles in degrees.
type Arc struct {
	X, Y                 int
	Radius               int
	StartAngle, EndAngle float64
	LineWidth            int
	Color                uint32
}

// Ellipse is a RECORD=8 primitive.
type Ellipse struct {
	X, Y             int
	Radius           int
	SecondaryRadius  int
	Color, AreaColor uint32
	IsSolid          bool
}

// TextJustification is the anchor point a Label's text is drawn relative to.
type TextJustification int

const (
	BottomLeft TextJustification = iota
	BottomCenter
	BottomRight
	CenterLeft
	CenterCenter
	CenterRight
	TopLeft
	TopCenter
	TopRight
)

// Label is a RECORD=4 primitive: a single line of free text.
type Label struct {
	X, Y          int
	Color         uint32
	FontID        int
	Orientation   int
	Justification TextJustification
	Text          string
}

// Parameter is a RECORD=41 primitive: a named, positioned key/value shown
// (or hidden) on the schematic.
type Parameter struct {
	Name     string
	Text     string
	X, Y     int
	FontID   int
	Color    uint32
	IsHidden bool
}

// FootprintModel is a RECORD=45 primitive linking the symbol to a PcbLib
// footprint by name.
type FootprintModel struct {
	ModelName   string
	Description string
}

// Symbol is one SchLib component: a named collection of drawing
// primitives plus pins and footprint links.
type Symbol struct {
	Name        string
	Description string
	Designator  string
	// PartCount is the logical part count (>=1); on disk it is stored as
	// PartCount+1, which the codec handles transparently.
	PartCount int

	Pins            []Pin
	Rectangles      []Rectangle
	Lines           []Line
	Polylines       []Polyline
	Arcs            []Arc
	Ellipses        []Ellipse
	Labels          []Label
	Parameters      []Parameter
	FootprintModels []FootprintModel
}
