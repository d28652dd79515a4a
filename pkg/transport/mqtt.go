// Package transport connects the panel to the MQTT broker of the arm controller.
package transport

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Defaults for Config.
const (
	DefaultBroker         = "wss://broker.emqx.io:8084/mqtt"
	DefaultConnectTimeout = 10 * time.Second
	disconnectQuiesce     = 250 // ms
)

// Handler receives an inbound message.
type Handler func(topic string, payload []byte)

// Config holds the broker connection settings.
type Config struct {
	Broker         string
	ClientID       string
	ConnectTimeout time.Duration

	// OnConnect runs after every successful (re)connection.
	OnConnect func(*Client)

	// OnConnectionLost runs when an established connection drops.
	OnConnectionLost func(error)
}

// Client is a best-effort MQTT client. Publishes are fire-and-forget at QoS 0.
type Client struct {
	mqtt    mqtt.Client
	timeout time.Duration
	closed  atomic.Bool
}

// New creates a client. It does not connect.
func New(cfg Config) *Client {
	if cfg.Broker == "" {
		cfg.Broker = DefaultBroker
	}
	if cfg.ClientID == "" {
		cfg.ClientID = fmt.Sprintf("scara-panel-%d", time.Now().UnixNano()%1_000_000)
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}

	c := &Client{timeout: cfg.ConnectTimeout}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetOnConnectHandler(func(mqtt.Client) {
			// A connect that was in flight when Close ran must not survive it.
			if c.closed.Load() {
				go c.mqtt.Disconnect(disconnectQuiesce)
				return
			}
			if cfg.OnConnect != nil {
				cfg.OnConnect(c)
			}
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			if cfg.OnConnectionLost != nil {
				cfg.OnConnectionLost(err)
			}
		})

	c.mqtt = mqtt.NewClient(opts)
	return c
}

// Connect starts connecting in the background and returns immediately.
// The returned channel receives the outcome of the first attempt and is
// then closed.
func (c *Client) Connect(ctx context.Context) <-chan error {
	result := make(chan error, 1)
	token := c.mqtt.Connect()

	go func() {
		defer close(result)
		select {
		case <-token.Done():
			if err := token.Error(); err != nil {
				result <- fmt.Errorf("connect: %w", err)
			}
		case <-ctx.Done():
			result <- ctx.Err()
		case <-time.After(c.timeout):
			result <- fmt.Errorf("connect: timed out after %s", c.timeout)
		}
	}()

	return result
}

// Close disconnects from the broker, aborting any connect or reconnect in
// progress. OnConnect never runs after Close. It is safe to call on a client
// that never connected, and more than once.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.mqtt.Disconnect(disconnectQuiesce)
	return nil
}

// IsConnected reports whether the connection is up.
func (c *Client) IsConnected() bool {
	return c.mqtt.IsConnectionOpen()
}

// Publish sends payload to topic without waiting for delivery.
func (c *Client) Publish(topic, payload string) {
	c.mqtt.Publish(topic, 0, false, payload)
}

// Subscribe registers h for messages matching topic.
func (c *Client) Subscribe(topic string, h Handler) error {
	token := c.mqtt.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		h(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(c.timeout) {
		return fmt.Errorf("subscribe %s: timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	return nil
}
