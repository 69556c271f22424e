// Package pcb holds the plain data types decoded from and encoded to a
// PcbLib component's Data/Parameters streams: Footprint and its primitive
// collections. These types carry no behaviour beyond the invariants the
// codec enforces while building them.
package pcb

import "github.com/hailam/altiumlib/internal/layer"

// PadShape is the closed set of pad outlines a Pad can have.
type PadShape int

const (
	// RoundedRectangle is also the fallback for any shape byte this codec
	// does not recognise.
	RoundedRectangle PadShape = iota
	Round
	Rectangle
	Oval
)

func (s PadShape) String() string {
	switch s {
	case Round:
		return "Round"
	case Rectangle:
		return "Rectangle"
	case Oval:
		return "Oval"
	default:
		return "RoundedRectangle"
	}
}

// Footprint is one PcbLib component: a named collection of geometric
// primitives plus an optional description. All coordinates are in
// millimetres, already converted from the internal fixed-point units the
// disk format uses.
type Footprint struct {
	Name        string
	Description string

	Pads            []Pad
	Tracks          []Track
	Arcs            []Arc
	Regions         []Region
	Text            []Text
	Fills           []Fill
	Vias            []Via
	ComponentBodies []ComponentBody
}

// Pad is a single copper pad. HoleSize is nil for a surface-mount pad; a
// non-nil value greater than 1 µm marks a through-hole pad.
type Pad struct {
	Designator string
	X, Y       float64
	Width      float64
	Height     float64
	HoleSize   *float64
	Shape      PadShape
	Rotation   float64
	Layer      layer.Layer
}

// Track is a straight copper segment between two points.
type Track struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Layer  layer.Layer
}

// Arc is a circular arc segment, angles in degrees, 0 to 360 for a full
// circle per the common convention Altium itself uses.
type Arc struct {
	X, Y                   float64
	Radius                 float64
	StartAngle, EndAngle   float64
	Width                  float64
	Layer                  layer.Layer
}

// Fill is an axis-aligned (optionally rotated) filled rectangle.
type Fill struct {
	X1, Y1   float64
	X2, Y2   float64
	Rotation float64
	Layer    layer.Layer
}

// Text is a single line of silkscreen or overlay text. Content may be
// empty even for a successfully decoded record — see the WideStrings open
// question in the design notes.
type Text struct {
	X, Y     float64
	Height   float64
	Rotation float64
	Content  string
	Layer    layer.Layer
}

// Vertex is one point of a Region's outline, in millimetres.
type Vertex struct {
	X, Y float64
}

// Region is an arbitrary polygon, typically a copper pour or keep-out area.
type Region struct {
	Layer         layer.Layer
	ParameterText string
	Vertices      []Vertex
}

// Via is recovered only as far as its layer; the remaining field layout is
// an open question (see design notes) so the rest of the record is opaque.
type Via struct {
	Layer layer.Layer
}

// ComponentBody describes a 3D model placement: rotation, offset, and
// standoff/overall heights, plus a reference to a blob in the owning
// library's Models map.
type ComponentBody struct {
	Layer          layer.Layer
	ModelID        string
	ModelName      string
	ModelEmbedded  bool
	RotX, RotY, RotZ float64
	DZ             float64
	StandoffHeight float64
	OverallHeight  float64
}
