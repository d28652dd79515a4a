package panel

import (
	"context"
	"sync"
	"time"

	"github.com/gwillem/scara/pkg/render"
	"github.com/gwillem/scara/pkg/scara"
)

// Frame is one rendered simulation frame.
type Frame struct {
	View      string
	Axes      scara.AxisState
	Pose      scara.Pose
	Timestamp time.Time
}

// Renderer redraws the arm from the latest axes on every tick, whether or
// not they changed, and delivers frames on a one-slot channel.
type Renderer struct {
	engine *render.Engine
	state  *State
	loop   *render.Loop

	mu   sync.Mutex
	cols int
	rows int

	frames chan Frame
}

// NewRenderer creates a renderer reading state hz times per second.
func NewRenderer(state *State, g scara.Geometry, hz int) *Renderer {
	r := &Renderer{
		engine: render.NewEngine(g),
		state:  state,
		cols:   80,
		rows:   24,
		frames: make(chan Frame, 1),
	}
	r.loop = render.NewLoop(hz, r.draw)
	return r
}

// Frames returns a channel that receives rendered frames.
func (r *Renderer) Frames() <-chan Frame {
	return r.frames
}

// Resize sets the canvas size in terminal cells, effective from the next frame.
func (r *Renderer) Resize(cols, rows int) {
	r.mu.Lock()
	r.cols, r.rows = cols, rows
	r.mu.Unlock()
}

// Start runs the render loop until ctx is done or stop is called. After
// stop returns no further frame is drawn.
func (r *Renderer) Start(ctx context.Context) (stop func()) {
	return r.loop.Start(ctx)
}

func (r *Renderer) draw(t time.Time) {
	r.mu.Lock()
	cols, rows := r.cols, r.rows
	r.mu.Unlock()

	axes := r.state.Get()
	c := render.NewCanvas(cols, rows)
	w, h := c.Size()
	pose := r.engine.Draw(c, axes, w, h)

	r.send(Frame{
		View:      c.View(),
		Axes:      axes,
		Pose:      pose,
		Timestamp: t,
	})
}

func (r *Renderer) send(f Frame) {
	select {
	case r.frames <- f:
	default:
		// Drop old frame if channel full, replace with new
		select {
		case <-r.frames:
		default:
		}
		select {
		case r.frames <- f:
		default:
		}
	}
}
