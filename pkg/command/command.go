// Package command maps axis values onto actuator commands and publishes them.
package command

import (
	"strconv"

	"github.com/gwillem/scara/pkg/scara"
)

// DefaultRoot is the topic root shared by command and status topics.
const DefaultRoot = "globalsmallestfarm/scara"

// MaxZ is the largest value the vertical actuator accepts.
const MaxZ = 1023

// Amplify scales a raw z axis value onto the actuator's wider range.
func Amplify(raw int) int {
	return min(raw*2, MaxZ)
}

// Value returns the wire value for a raw axis value on channel c.
func Value(c scara.Channel, raw int) int {
	if c == scara.ZSpeed {
		return Amplify(raw)
	}
	return raw
}

// Topic returns the command topic for a channel under root.
func Topic(root string, c scara.Channel) string {
	return root + "/command/" + string(c)
}

// StatusTopic returns the wildcard topic matching every status message under root.
func StatusTopic(root string) string {
	return root + "/status/#"
}

// Payload encodes a wire value as a decimal string.
func Payload(v int) string {
	return strconv.Itoa(v)
}
