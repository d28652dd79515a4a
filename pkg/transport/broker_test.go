package transport_test

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"testing"
)

// MQTT 3.1.1 control packet types.
const (
	packetConnect    = 1
	packetPublish    = 3
	packetSubscribe  = 8
	packetPingReq    = 12
	packetDisconnect = 14
)

// testBroker answers just enough of MQTT 3.1.1 for one client: CONNACK,
// SUBACK, PINGRESP. It records SUBSCRIBE and PUBLISH packets in arrival
// order. When hold is non-nil, CONNACK is sent only once hold is closed.
type testBroker struct {
	ln   net.Listener
	hold chan struct{}

	connects atomic.Int32 // CONNECT packets seen
	open     atomic.Int32 // connections currently open

	mu      sync.Mutex
	packets []string
}

func startBroker(t *testing.T, hold chan struct{}) *testBroker {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	b := &testBroker{ln: ln, hold: hold}
	t.Cleanup(func() { ln.Close() })
	go b.serve()
	return b
}

func (b *testBroker) URL() string {
	return "tcp://" + b.ln.Addr().String()
}

// Packets returns the recorded packets as "SUBSCRIBE <topic>" and
// "PUBLISH <topic> <payload>".
func (b *testBroker) Packets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.packets...)
}

func (b *testBroker) record(s string) {
	b.mu.Lock()
	b.packets = append(b.packets, s)
	b.mu.Unlock()
}

func (b *testBroker) serve() {
	for {
		conn, err := b.ln.Accept()
		if err != nil {
			return
		}
		go b.handle(conn)
	}
}

func (b *testBroker) handle(conn net.Conn) {
	b.open.Add(1)
	defer b.open.Add(-1)
	defer conn.Close()

	r := bufio.NewReader(conn)
	for {
		header, body, err := readPacket(r)
		if err != nil {
			return
		}
		switch header >> 4 {
		case packetConnect:
			b.connects.Add(1)
			if b.hold != nil {
				<-b.hold
			}
			if _, err := conn.Write([]byte{0x20, 0x02, 0x00, 0x00}); err != nil {
				return
			}
		case packetSubscribe:
			if len(body) < 4 {
				return
			}
			topic, _ := readString(body[2:])
			b.record("SUBSCRIBE " + topic)
			if _, err := conn.Write([]byte{0x90, 0x03, body[0], body[1], 0x00}); err != nil {
				return
			}
		case packetPublish:
			topic, rest := readString(body)
			if qos := (header >> 1) & 0x03; qos > 0 && len(rest) >= 2 {
				rest = rest[2:]
			}
			b.record("PUBLISH " + topic + " " + string(rest))
		case packetPingReq:
			if _, err := conn.Write([]byte{0xd0, 0x00}); err != nil {
				return
			}
		case packetDisconnect:
			return
		}
	}
}

func readPacket(r *bufio.Reader) (byte, []byte, error) {
	header, err := r.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	length, multiplier := 0, 1
	for i := 0; ; i++ {
		if i == 4 {
			return 0, nil, errors.New("malformed remaining length")
		}
		d, err := r.ReadByte()
		if err != nil {
			return 0, nil, err
		}
		length += int(d&0x7f) * multiplier
		if d&0x80 == 0 {
			break
		}
		multiplier *= 128
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, err
	}
	return header, body, nil
}

func readString(b []byte) (string, []byte) {
	if len(b) < 2 {
		return "", nil
	}
	n := int(binary.BigEndian.Uint16(b))
	if len(b) < 2+n {
		return "", nil
	}
	return string(b[2 : 2+n]), b[2+n:]
}
