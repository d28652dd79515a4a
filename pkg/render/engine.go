package render

import (
	"fmt"

	"github.com/gwillem/scara/pkg/scara"
)

// Stroke widths of the two links, in pixels.
const (
	LowerLinkWidth = 8
	UpperLinkWidth = 6
)

const (
	baseWidth   = 40
	baseHeight  = 20
	riserWidth  = 20
	textX       = 10
	textSpacing = 20
)

// Palette holds the color of every arm part.
type Palette struct {
	Base    Color
	Riser   Color
	Lower   Color
	Upper   Color
	Gripper Color
	Text    Color
}

// DefaultPalette is the panel's festive green/red scheme.
var DefaultPalette = Palette{
	Base:    "#00ff00",
	Riser:   "#800080",
	Lower:   "#ff0000",
	Upper:   "#00ff00",
	Gripper: "#ff0000",
	Text:    "#ffffff",
}

// Engine draws poses of one arm.
type Engine struct {
	Geometry scara.Geometry
	Palette  Palette
}

// NewEngine creates an engine for geometry g using the default palette.
func NewEngine(g scara.Geometry) *Engine {
	return &Engine{Geometry: g, Palette: DefaultPalette}
}

// Draw solves the pose for axes in a width x height viewport and draws it
// onto s from scratch: base, riser, lower link, upper link, gripper, then the
// three readout lines. It returns the pose it drew.
func (e *Engine) Draw(s Surface, axes scara.AxisState, width, height float64) scara.Pose {
	p := scara.Solve(axes, e.Geometry, width, height)

	s.Clear()

	s.FillRect(Rect{
		X: p.Base.X - baseWidth/2,
		Y: p.Base.Y,
		W: baseWidth,
		H: baseHeight,
	}, e.Palette.Base)

	s.FillRect(Rect{
		X: p.Base.X - riserWidth/2,
		Y: p.Shoulder.Y,
		W: riserWidth,
		H: p.RiserHeight,
	}, e.Palette.Riser)

	s.Line(p.Shoulder, p.Elbow, LowerLinkWidth, e.Palette.Lower)
	s.Line(p.Elbow, p.Hand, UpperLinkWidth, e.Palette.Upper)
	s.FillCircle(p.Hand, p.GripperRadius, e.Palette.Gripper)

	for i, line := range Readout(p, axes) {
		s.Text(scara.Point{X: textX, Y: float64(textSpacing * (i + 1))}, line, e.Palette.Text)
	}

	return p
}

// Readout returns the text lines reporting the shoulder angle, arm angle and
// raw z value.
func Readout(p scara.Pose, axes scara.AxisState) []string {
	return []string{
		fmt.Sprintf("Y-Shoulder deg: %.1f (0~%.0f°)", p.ShoulderDeg(), scara.ShoulderExtraMax),
		fmt.Sprintf("X-Arm deg: %.1f (0~%.0f°)", p.ArmDeg(), scara.ArmExtraMax),
		fmt.Sprintf("Z-Height: %d / %d", axes.Z, scara.AxisMax),
	}
}
