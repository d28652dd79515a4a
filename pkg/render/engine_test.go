package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/scara/pkg/scara"
)

func TestEngine_DrawOrder(t *testing.T) {
	var rec Recorder
	NewEngine(scara.DefaultGeometry()).Draw(&rec, scara.AxisState{Z: 256, Gripper: 20}, 640, 480)

	assert.Equal(t, []OpKind{
		OpClear,
		OpFillRect, // base
		OpFillRect, // riser
		OpLine,     // shoulder -> elbow
		OpLine,     // elbow -> hand
		OpFillCircle,
		OpText,
		OpText,
		OpText,
	}, rec.Kinds())
}

func TestEngine_Primitives(t *testing.T) {
	var rec Recorder
	axes := scara.AxisState{X: 128, Y: 64, Z: 256, Gripper: 40}
	p := NewEngine(scara.DefaultGeometry()).Draw(&rec, axes, 640, 480)
	require.Len(t, rec.Ops, 9)

	base := rec.Ops[1]
	assert.Equal(t, Rect{X: 300, Y: 430, W: 40, H: 20}, base.Rect)
	assert.Equal(t, DefaultPalette.Base, base.Color)

	riser := rec.Ops[2]
	assert.InDelta(t, 216, riser.Rect.H, 1e-9)
	assert.InDelta(t, p.Shoulder.Y, riser.Rect.Y, 1e-9)
	assert.InDelta(t, 430, riser.Rect.Y+riser.Rect.H, 1e-9)
	assert.Equal(t, 310.0, riser.Rect.X)

	lower, upper := rec.Ops[3], rec.Ops[4]
	assert.Equal(t, p.Shoulder, lower.From)
	assert.Equal(t, p.Elbow, lower.To)
	assert.Equal(t, p.Elbow, upper.From)
	assert.Equal(t, p.Hand, upper.To)
	assert.Greater(t, lower.Width, upper.Width)

	gripper := rec.Ops[5]
	assert.Equal(t, p.Hand, gripper.From)
	assert.InDelta(t, 13, gripper.Radius, 1e-9)

	assert.Equal(t, scara.Point{X: 10, Y: 20}, rec.Ops[6].From)
	assert.Equal(t, scara.Point{X: 10, Y: 40}, rec.Ops[7].From)
	assert.Equal(t, scara.Point{X: 10, Y: 60}, rec.Ops[8].From)
	assert.Equal(t, "Z-Height: 256 / 512", rec.Ops[8].Text)
}

func TestEngine_RedrawReplacesFrame(t *testing.T) {
	var rec Recorder
	e := NewEngine(scara.DefaultGeometry())
	e.Draw(&rec, scara.Home, 640, 480)
	e.Draw(&rec, scara.Home, 640, 480)
	assert.Len(t, rec.Ops, 9)
}

func TestReadout_RestPose(t *testing.T) {
	p := scara.Solve(scara.Home, scara.DefaultGeometry(), 640, 480)
	assert.Equal(t, []string{
		"Y-Shoulder deg: 270.0 (0~90°)",
		"X-Arm deg: 140.0 (0~300°)",
		"Z-Height: 0 / 512",
	}, Readout(p, scara.Home))
}

func TestEngine_OutOfRangeZStaysOnCanvas(t *testing.T) {
	var rec Recorder
	NewEngine(scara.DefaultGeometry()).Draw(&rec, scara.AxisState{Z: 1023}, 640, 480)

	riser := rec.Ops[2]
	assert.InDelta(t, 480*0.9, riser.Rect.H, 1e-9)
	assert.GreaterOrEqual(t, riser.Rect.Y, -50.0)
}
