// Package units converts between Altium's internal fixed-point coordinate
// space and millimetres. Altium stores every coordinate as a signed 32-bit
// count of 1/10,000 mil: 10,000 units = 1 mil = 0.0254 mm.
package units

import "math"

const (
	// PerMil is the number of internal units in one mil.
	PerMil = 10000
	// mmPerMil is the fixed conversion factor between mils and millimetres.
	mmPerMil = 0.0254
	// roundingEpsilon is the 1e-6 mm step decoded values are rounded to,
	// trimming binary floating point noise past the sixth decimal place.
	roundingEpsilon = 1e-6
)

// ToMM converts an internal fixed-point coordinate to millimetres, rounded
// to six decimal places (1e-6 mm) to absorb floating point noise from the
// division.
func ToMM(units int32) float64 {
	mm := float64(units) / PerMil * mmPerMil
	return roundTo(mm, roundingEpsilon)
}

// FromMM converts a millimetre value back to the internal fixed-point
// coordinate space, rounding half away from zero like Altium itself does.
func FromMM(mm float64) int32 {
	units := mm / mmPerMil * PerMil
	return int32(roundHalfAwayFromZero(units))
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}

// roundTo rounds v to the nearest multiple of step.
func roundTo(v, step float64) float64 {
	return roundHalfAwayFromZero(v/step) * step
}
