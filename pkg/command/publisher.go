package command

import "github.com/gwillem/scara/pkg/scara"

// Transport is the outbound side of the command channel.
type Transport interface {
	IsConnected() bool
	Publish(topic, payload string)
}

// Publisher sends axis values as commands. Sends are best effort: nothing
// is queued or retried, and a disconnected transport drops them.
type Publisher struct {
	transport Transport
	root      string
}

// NewPublisher creates a publisher for topics under root.
func NewPublisher(t Transport, root string) *Publisher {
	if root == "" {
		root = DefaultRoot
	}
	return &Publisher{transport: t, root: root}
}

// Root returns the topic root.
func (p *Publisher) Root() string {
	return p.root
}

// Send publishes the command for a raw axis value. It reports whether the
// command was handed to the transport.
func (p *Publisher) Send(c scara.Channel, raw int) bool {
	if p.transport == nil || !p.transport.IsConnected() {
		return false
	}
	p.publish(c, raw)
	return true
}

// Zero publishes 0 on every channel in command order. It reports whether
// the burst was handed to the transport.
func (p *Publisher) Zero() bool {
	if p.transport == nil || !p.transport.IsConnected() {
		return false
	}
	p.burst()
	return true
}

// ForceZero publishes the zero burst without checking the connection
// state. Used from connect handlers, where the transport is known up.
func (p *Publisher) ForceZero() {
	if p.transport == nil {
		return
	}
	p.burst()
}

func (p *Publisher) burst() {
	for _, c := range scara.AllChannels() {
		p.publish(c, 0)
	}
}

func (p *Publisher) publish(c scara.Channel, raw int) {
	p.transport.Publish(Topic(p.root, c), Payload(Value(c, raw)))
}
