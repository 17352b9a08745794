package entropy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"github.com/rzbill/entid/pkg/log"
)

// defaultStreamBuffer caps buffered entropy at 64 KiB.
const defaultStreamBuffer = 64 << 10

// Stream maintains a websocket subscription to one entropy network node.
// The node pushes binary frames of random bytes; Stream buffers them and
// serves every draw from bytes no earlier draw has consumed. A dropped
// connection is redialed with exponential backoff.
type Stream struct {
	endpoint  string
	dialer    *websocket.Dialer
	logger    log.Logger
	maxBuffer int

	mu   sync.Mutex
	buf  []byte
	conn *websocket.Conn

	notify    chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithStreamLogger attaches a logger for connection lifecycle events.
func WithStreamLogger(l log.Logger) StreamOption {
	return func(s *Stream) { s.logger = l }
}

// WithStreamBuffer sets the buffered-entropy cap in bytes. Frames arriving
// with the buffer full are discarded; discarded bytes are never served.
func WithStreamBuffer(n int) StreamOption {
	return func(s *Stream) {
		if n > 0 {
			s.maxBuffer = n
		}
	}
}

// WithStreamDialer replaces the websocket dialer.
func WithStreamDialer(d *websocket.Dialer) StreamOption {
	return func(s *Stream) { s.dialer = d }
}

// NewStream subscribes to the entropy stream at endpoint (a ws:// or wss://
// URL) and starts buffering in the background.
func NewStream(endpoint string, opts ...StreamOption) *Stream {
	s := &Stream{
		endpoint:  endpoint,
		dialer:    websocket.DefaultDialer,
		logger:    log.NewNop(),
		maxBuffer: defaultStreamBuffer,
		notify:    make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Bits implements Source. It blocks until enough buffered entropy is
// available, ctx is done, or the stream is closed.
func (s *Stream) Bits(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	want := bytesFor(n)

	for {
		s.mu.Lock()
		if len(s.buf) >= want {
			p := make([]byte, want)
			copy(p, s.buf)
			s.buf = s.buf[want:]
			s.mu.Unlock()
			maskTail(p, n)
			return p, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.closed:
			return nil, fmt.Errorf("%w: stream closed", ErrUnavailable)
		case <-s.notify:
		}
	}
}

// Close tears down the subscription. Pending and future draws fail with
// ErrUnavailable.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.mu.Lock()
		if s.conn != nil {
			s.conn.Close()
		}
		s.mu.Unlock()
	})
	return nil
}

// run dials and reads until closed, redialing with backoff on failure.
func (s *Stream) run() {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 0 // redial until closed

	for {
		select {
		case <-s.closed:
			return
		default:
		}

		conn, _, err := s.dialer.Dial(s.endpoint, nil)
		if err != nil {
			s.logger.Warn("entropy stream dial failed",
				log.Str("node", s.endpoint), log.Err(err))
			select {
			case <-s.closed:
				return
			case <-time.After(bo.NextBackOff()):
			}
			continue
		}

		s.mu.Lock()
		select {
		case <-s.closed:
			s.mu.Unlock()
			conn.Close()
			return
		default:
		}
		s.conn = conn
		s.mu.Unlock()

		bo.Reset()
		s.logger.Debug("entropy stream connected", log.Str("node", s.endpoint))
		s.readLoop(conn)

		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		conn.Close()
	}
}

// readLoop buffers binary frames until the connection drops or the stream
// is closed.
func (s *Stream) readLoop(conn *websocket.Conn) {
	for {
		typ, frame, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-s.closed:
			default:
				s.logger.Warn("entropy stream read failed",
					log.Str("node", s.endpoint), log.Err(err))
			}
			return
		}
		if typ != websocket.BinaryMessage || len(frame) == 0 {
			continue
		}

		s.mu.Lock()
		if len(s.buf)+len(frame) <= s.maxBuffer {
			s.buf = append(s.buf, frame...)
		}
		s.mu.Unlock()

		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
}
