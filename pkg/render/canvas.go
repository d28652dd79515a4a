package render

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"

	"github.com/gwillem/scara/pkg/scara"
)

// Pixels covered by one terminal cell. Cells are about twice as tall as wide.
const (
	CellWidth  = 4
	CellHeight = 8
)

// Runes used to paint primitives.
const (
	fillRune  = '█'
	thickRune = '█'
	thinRune  = '▒'
	dotRune   = '●'
)

// Canvas is a Surface that rasterizes onto an ntcharts canvas, one cell per
// CellWidth x CellHeight pixels. Anything outside the canvas is clipped.
type Canvas struct {
	cv   canvas.Model
	cols int
	rows int
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Canvas{
		cv:   canvas.New(cols, rows),
		cols: cols,
		rows: rows,
	}
}

// Size returns the viewport covered by the canvas, in pixels.
func (c *Canvas) Size() (width, height float64) {
	return float64(c.cols * CellWidth), float64(c.rows * CellHeight)
}

// View renders the canvas contents.
func (c *Canvas) View() string {
	return c.cv.View()
}

func (c *Canvas) Clear() {
	c.cv.Clear()
}

func (c *Canvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := cellFloor(r.X, r.Y)
	x1 := int(math.Ceil((r.X+r.W)/CellWidth)) - 1
	y1 := int(math.Ceil((r.Y+r.H)/CellHeight)) - 1
	st := style(col)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, fillRune, st)
		}
	}
}

// Line draws a Bresenham line between the cells holding from and to.
func (c *Canvas) Line(from, to scara.Point, width float64, col Color) {
	r := thinRune
	if width >= LowerLinkWidth {
		r = thickRune
	}
	st := style(col)

	x0, y0 := cellFloor(from.X, from.Y)
	x1, y1 := cellFloor(to.X, to.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, r, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillCircle paints every cell whose center lies inside the circle, and
// always the cell holding the center.
func (c *Canvas) FillCircle(center scara.Point, radius float64, col Color) {
	st := style(col)
	x0, y0 := cellFloor(center.X-radius, center.Y-radius)
	x1, y1 := cellFloor(center.X+radius, center.Y+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) * CellWidth
			py := (float64(y) + 0.5) * CellHeight
			if math.Hypot(px-center.X, py-center.Y) <= radius {
				c.set(x, y, fillRune, st)
			}
		}
	}
	cx, cy := cellFloor(center.X, center.Y)
	c.set(cx, cy, dotRune, st)
}

// Text writes s starting at the cell holding at. Runes past an edge are clipped.
func (c *Canvas) Text(at scara.Point, s string, col Color) {
	x, y := cellFloor(at.X, at.Y)
	st := style(col)
	for i, r := range []rune(s) {
		c.set(x+i, y, r, st)
	}
}

func (c *Canvas) set(x, y int, r rune, st lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cv.SetRuneWithStyle(canvas.Point{X: x, Y: y}, r, st)
}

func cellFloor(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func style(c Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
