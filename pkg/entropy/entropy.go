package entropy

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the entropy source could not be reached or
// could not produce the requested bits.
var ErrUnavailable = errors.New("entropy: source unavailable")

// ErrInvalidCount reports a non-positive bit count.
var ErrInvalidCount = errors.New("entropy: bit count must be positive")

// Source supplies independent unbiased random bits.
//
// Bits returns ceil(n/8) bytes carrying exactly n bits, most significant
// first; pad bits in the final byte are zero. The call may block until
// entropy is available or ctx is done. Implementations must serve every
// call from bits no other call has observed.
type Source interface {
	Bits(ctx context.Context, n int) ([]byte, error)
}

// bytesFor returns the byte length holding n bits.
func bytesFor(n int) int { return (n + 7) / 8 }

// maskTail zeroes the pad bits after the first n bits of p.
func maskTail(p []byte, n int) {
	if rem := n % 8; rem != 0 {
		p[len(p)-1] &= 0xff << (8 - rem)
	}
}
