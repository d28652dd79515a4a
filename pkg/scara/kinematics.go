package scara

import (
	"fmt"
	"math"
)

// BaselineMargin is the distance, in pixels, from the bottom of the viewport
// to the top of the base block. The riser grows upward from here.
const BaselineMargin = 50

// riserFraction is the share of the viewport height the riser may occupy.
const riserFraction = 0.9

// Point is a 2D position in viewport pixels, y growing downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%0.1f, %0.1f)", p.X, p.Y)
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// polar returns the offset of length l at angle a.
func polar(l, a float64) Point {
	return Point{X: l * math.Cos(a), Y: l * math.Sin(a)}
}

// Pose is the arm configuration derived from one AxisState.
type Pose struct {
	RiserHeight   float64
	ShoulderAngle float64 // radians, absolute
	ArmAngle      float64 // radians, absolute
	Base          Point   // top center of the base block
	Shoulder      Point
	Elbow         Point
	Hand          Point
	GripperRadius float64
}

// ShoulderDeg returns the shoulder angle in degrees, unwrapped.
func (p Pose) ShoulderDeg() float64 {
	return Rad2Deg(p.ShoulderAngle)
}

// ArmDeg returns the arm angle in degrees, unwrapped.
func (p Pose) ArmDeg() float64 {
	return Rad2Deg(p.ArmAngle)
}

// RiserHeight maps z from [0, AxisMax] onto [0, 0.9*height], clamping
// anything outside so the riser never leaves the viewport.
func RiserHeight(z int, height float64) float64 {
	limit := height * riserFraction
	h := MapRange(float64(z), 0, AxisMax, 0, limit)
	return math.Max(0, math.Min(h, limit))
}

// GripperRadius returns the radius of the gripper marker.
func GripperRadius(g int) float64 {
	return 5 + float64(g)*0.2
}

// Solve computes the pose of the arm for axes s in a width x height viewport.
// The arm angle is chained onto the shoulder angle, not absolute.
func Solve(s AxisState, g Geometry, width, height float64) Pose {
	riser := RiserHeight(s.Z, height)

	armExtra := MapRange(float64(s.X), 0, AxisMax, 0, ArmExtraMax)
	shoulderExtra := MapRange(float64(s.Y), 0, AxisMax, 0, ShoulderExtraMax)

	shoulderAngle := g.ShoulderBaseAngle + Deg2Rad(shoulderExtra)
	armAngle := shoulderAngle + g.ArmInnerAngleOffset + Deg2Rad(armExtra)

	base := Point{X: width / 2, Y: height - BaselineMargin}
	shoulder := Point{X: base.X, Y: base.Y - riser}
	elbow := shoulder.Add(polar(g.LowerLinkLength, shoulderAngle))
	hand := elbow.Add(polar(g.UpperLinkLength, armAngle))

	return Pose{
		RiserHeight:   riser,
		ShoulderAngle: shoulderAngle,
		ArmAngle:      armAngle,
		Base:          base,
		Shoulder:      shoulder,
		Elbow:         elbow,
		Hand:          hand,
		GripperRadius: GripperRadius(s.Gripper),
	}
}
