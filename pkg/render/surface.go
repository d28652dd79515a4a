// Package render draws the simulated arm as an ordered list of primitives.
package render

import "github.com/gwillem/scara/pkg/scara"

// Color is a hex RGB color such as "#ff0000".
type Color string

// Surface receives drawing primitives in viewport pixel coordinates,
// y growing downward. Later primitives overlay earlier ones.
type Surface interface {
	Clear()
	FillRect(r Rect, c Color)
	Line(from, to scara.Point, width float64, c Color)
	FillCircle(center scara.Point, radius float64, c Color)
	Text(at scara.Point, s string, c Color)
}

// Rect is an axis aligned rectangle with its origin at the top left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
