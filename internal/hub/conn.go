// FilePath: internal/hub/conn.go
package hub

import (
	"net"
	"sync"
	"time"
)

// Conn is the slice of a websocket connection the hub needs. It is satisfied
// by *websocket.Conn and by test fakes.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
	RemoteAddr() net.Addr
}

// lockedConn serializes writes to one connection. The gorilla transport
// allows at most one concurrent writer, but the device slot is written by the
// device loop (closed-loop commands) and by every dashboard loop (operator
// commands) at the same time.
type lockedConn struct {
	raw         Conn
	sendTimeout time.Duration

	mu sync.Mutex
}

func newLockedConn(raw Conn, sendTimeout time.Duration) *lockedConn {
	return &lockedConn{raw: raw, sendTimeout: sendTimeout}
}

func (c *lockedConn) ReadMessage() (int, []byte, error) {
	return c.raw.ReadMessage()
}

func (c *lockedConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.sendTimeout))
	}
	return c.raw.WriteJSON(v)
}

func (c *lockedConn) SetWriteDeadline(t time.Time) error {
	return c.raw.SetWriteDeadline(t)
}

func (c *lockedConn) Close() error {
	return c.raw.Close()
}

func (c *lockedConn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
