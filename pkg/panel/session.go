package panel

import (
	"fmt"
	"time"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/scara"
	"github.com/gwillem/scara/pkg/transport"
)

// maxStatusPayload bounds how many runes of a status payload are logged.
const maxStatusPayload = 60

// Subscriber is the inbound side of the command channel.
type Subscriber interface {
	Subscribe(topic string, h transport.Handler) error
}

// Session ties the axis state to the outbound command channel.
type Session struct {
	state *State
	pub   *command.Publisher
	logCh chan string
}

// NewSession creates a session publishing through t under topic root.
func NewSession(t command.Transport, root string) *Session {
	return &Session{
		state: &State{},
		pub:   command.NewPublisher(t, root),
		logCh: make(chan string, 10),
	}
}

// State returns the session's axis state cell.
func (s *Session) State() *State {
	return s.state
}

// Axes returns the current axes.
func (s *Session) Axes() scara.AxisState {
	return s.state.Get()
}

// Logs returns a channel that receives log messages.
func (s *Session) Logs() <-chan string {
	return s.logCh
}

func (s *Session) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case s.logCh <- msg:
	default:
		// Drop if channel full
	}
}

// Set commits a new value for channel c and publishes its command if the
// value changed. Values are clamped to the channel range.
func (s *Session) Set(c scara.Channel, v int) {
	cur, changed := s.state.Set(c, v)
	if !changed {
		return
	}
	s.pub.Send(c, cur)
}

// Nudge moves channel c by delta.
func (s *Session) Nudge(c scara.Channel, delta int) {
	s.Set(c, s.state.Get().Value(c)+delta)
}

// Home zeroes every axis locally, then publishes zero on every channel.
// The local reset happens first so no later frame shows the old pose.
func (s *Session) Home() {
	s.state.Reset()
	if !s.pub.Zero() {
		s.log("Home: not connected, commands dropped")
		return
	}
	s.log("Home: all axes zeroed")
}

// Connected runs the session start sequence on a fresh connection:
// subscribe to status, then zero every axis locally and on the wire.
func (s *Session) Connected(sub Subscriber) {
	s.log("Connected to broker")

	topic := command.StatusTopic(s.pub.Root())
	if err := sub.Subscribe(topic, s.handleStatus); err != nil {
		s.log("Warning: %v", err)
	}

	s.state.Reset()
	s.pub.ForceZero()
}

// ConnectionLost records a dropped connection. Commands are dropped until
// the transport reconnects.
func (s *Session) ConnectionLost(err error) {
	s.log("Connection lost: %v", err)
}

// ConnectFailed records a failed initial connection attempt.
func (s *Session) ConnectFailed(err error) {
	s.log("Connect failed: %v", err)
}

// handleStatus logs inbound status messages verbatim; no schema is assumed.
func (s *Session) handleStatus(topic string, payload []byte) {
	text := []rune(string(payload))
	if len(text) > maxStatusPayload {
		text = append(text[:maxStatusPayload], '…')
	}
	s.log("status %s: %s", topic, string(text))
}
