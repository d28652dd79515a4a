// Package scara models the axes, geometry and planar kinematics of a SCARA arm.
package scara

// Channel identifies one operator-controlled axis and its command topic suffix.
type Channel string

// Channels of the SCARA panel.
const (
	XSpeed  Channel = "xSpeed"  // arm joint
	YSpeed  Channel = "ySpeed"  // shoulder joint
	ZSpeed  Channel = "zSpeed"  // vertical riser
	Gripper Channel = "gripper" // gripper opening
)

// Declared UI ranges. All channels start at 0.
const (
	AxisMax    = 512
	GripperMax = 40
)

// AllChannels returns all channels in command order.
func AllChannels() []Channel {
	return []Channel{
		XSpeed,
		YSpeed,
		ZSpeed,
		Gripper,
	}
}

// Max returns the upper bound of the channel's UI range.
func (c Channel) Max() int {
	if c == Gripper {
		return GripperMax
	}
	return AxisMax
}

// Clamp limits v to the channel's UI range.
func (c Channel) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if m := c.Max(); v > m {
		return m
	}
	return v
}

// AxisState holds the current value of every channel.
type AxisState struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Z       int `json:"z"`
	Gripper int `json:"gripper"`
}

// Home is the all-zero axis state.
var Home = AxisState{}

// Value returns the value held for a channel.
func (s AxisState) Value(c Channel) int {
	switch c {
	case XSpeed:
		return s.X
	case YSpeed:
		return s.Y
	case ZSpeed:
		return s.Z
	case Gripper:
		return s.Gripper
	}
	return 0
}

// With returns a copy of s with channel c set to v, clamped to its range.
// Unknown channels leave s unchanged.
func (s AxisState) With(c Channel, v int) AxisState {
	v = c.Clamp(v)
	switch c {
	case XSpeed:
		s.X = v
	case YSpeed:
		s.Y = v
	case ZSpeed:
		s.Z = v
	case Gripper:
		s.Gripper = v
	}
	return s
}
