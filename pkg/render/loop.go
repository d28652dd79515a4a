package render

import (
	"context"
	"sync"
	"time"
)

// DefaultHz is the redraw rate used when none is configured.
const DefaultHz = 60

// Loop calls a draw function on every tick until cancelled. It redraws
// whether or not anything changed.
type Loop struct {
	interval time.Duration
	draw     func(time.Time)
}

// NewLoop creates a loop that calls draw hz times per second.
func NewLoop(hz int, draw func(time.Time)) *Loop {
	if hz <= 0 {
		hz = DefaultHz
	}
	return &Loop{
		interval: time.Second / time.Duration(hz),
		draw:     draw,
	}
}

// Interval returns the time between two ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run draws once immediately and then on every tick, returning when ctx is
// done. No draw starts after ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	l.draw(time.Now())

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			l.draw(t)
		}
	}
}

// Start runs the loop in the background. The returned stop function cancels
// it and waits for an in-flight draw to finish; once stop returns, draw is
// never called again. Stop may be called more than once.
func (l *Loop) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}
