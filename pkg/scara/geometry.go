package scara

import "math"

// Geometry describes the fixed two-link arm.
type Geometry struct {
	UpperLinkLength     float64 // elbow to hand
	LowerLinkLength     float64 // shoulder to elbow
	ShoulderBaseAngle   float64 // radians
	ArmInnerAngleOffset float64 // radians, relative to the shoulder
}

// Angle ranges, in degrees, swept by the full slider travel.
const (
	ArmExtraMax      = 300.0
	ShoulderExtraMax = 90.0
)

// DefaultGeometry returns the panel's arm. The offsets put the rest pose
// upright with the arm folded inward.
func DefaultGeometry() Geometry {
	return Geometry{
		UpperLinkLength:     80,
		LowerLinkLength:     100,
		ShoulderBaseAngle:   Deg2Rad(270),
		ArmInnerAngleOffset: Deg2Rad(-130),
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeDeg wraps an angle in degrees into [0, 360).
func NormalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// MapRange maps v linearly from [inMin, inMax] to [outMin, outMax].
// Values outside the input range extrapolate.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
