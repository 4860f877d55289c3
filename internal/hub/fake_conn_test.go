// FilePath: internal/hub/fake_conn_test.go
package hub

import (
	"encoding/json"
	"io"
	"net"
	"sync"
	"testing"
	"time"
)

// fakeConn scripts inbound frames through a channel and records every write.
// Close unblocks a pending ReadMessage, mirroring a real transport teardown.
type fakeConn struct {
	reads     chan []byte
	closeOnce sync.Once

	mu       sync.Mutex
	writes   []any
	writeErr error
	closed   bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{reads: make(chan []byte, 16)}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	frame, ok := <-f.reads
	if !ok {
		return 0, nil, io.EOF
	}
	return 1, frame, nil
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, v)
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.closeOnce.Do(func() { close(f.reads) })
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

// feed queues one JSON-encoded frame for the next read.
func (f *fakeConn) feed(t *testing.T, v any) {
	t.Helper()
	frame, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}
	f.reads <- frame
}

// feedRaw queues one frame verbatim, malformed payloads included.
func (f *fakeConn) feedRaw(frame string) {
	f.reads <- []byte(frame)
}

func (f *fakeConn) sent() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]any, len(f.writes))
	copy(out, f.writes)
	return out
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
