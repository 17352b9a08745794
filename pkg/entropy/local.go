package entropy

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"time"
)

// localRetries bounds re-reads on transient crypto/rand failures.
const localRetries = 3

// Local draws bits from the operating system CSPRNG via crypto/rand. It
// stands in for the distributed entropy network in environments without
// access to it.
type Local struct{}

// NewLocal returns a Local source.
func NewLocal() *Local { return &Local{} }

// Bits implements Source.
func (l *Local) Bits(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := make([]byte, bytesFor(n))
	var lastErr error
	for i := 0; i < localRetries; i++ {
		if _, err := crand.Read(p); err != nil {
			lastErr = err
			time.Sleep(time.Microsecond << i)
			continue
		}
		maskTail(p, n)
		return p, nil
	}
	return nil, fmt.Errorf("%w: crypto/rand: %v", ErrUnavailable, lastErr)
}
