package render

import "github.com/gwillem/scara/pkg/scara"

// OpKind names a drawing primitive.
type OpKind string

// Drawing primitives.
const (
	OpClear      OpKind = "clear"
	OpFillRect   OpKind = "fill_rect"
	OpLine       OpKind = "line"
	OpFillCircle OpKind = "fill_circle"
	OpText       OpKind = "text"
)

// Op is one recorded drawing primitive. Only the fields of its kind are set.
type Op struct {
	Kind   OpKind      `json:"kind"`
	Color  Color       `json:"color,omitempty"`
	Rect   Rect        `json:"rect,omitzero"`
	From   scara.Point `json:"from,omitzero"`
	To     scara.Point `json:"to,omitzero"`
	Width  float64     `json:"width,omitempty"`
	Radius float64     `json:"radius,omitempty"`
	Text   string      `json:"text,omitempty"`
}

// Recorder is a Surface that keeps the primitives it receives. Clear
// discards everything recorded so far.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) Line(from, to scara.Point, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Width: width, Color: c})
}

func (r *Recorder) FillCircle(center scara.Point, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, From: center, Radius: radius, Color: c})
}

func (r *Recorder) Text(at scara.Point, s string, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, From: at, Text: s, Color: c})
}

// Kinds returns the kinds of the recorded primitives in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}
