package uuid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rzbill/entid/pkg/entropy"
)

// ErrInvalidCount reports a non-positive batch size.
var ErrInvalidCount = errors.New("uuid: count must be positive")

// errClockRange reports a wall clock outside the 48-bit millisecond range.
// Reaching it before the year 10889 means the host clock is misconfigured.
var errClockRange = errors.New("uuid: wall clock outside 48-bit millisecond range")

// randBits is the fresh entropy drawn per identifier: 12 bits of rand_a
// plus 62 bits of rand_b.
const randBits = 74

// nowMS returns current time in milliseconds since Unix epoch.
var nowMS = func() int64 { return time.Now().UnixMilli() }

// Generator produces version 7 UUIDs from an entropy source.
//
// A Generator is safe for concurrent use. It holds no mutable state: every
// call reads the clock and performs its own independent entropy draw, so
// concurrent callers never observe the same bits.
type Generator struct {
	source entropy.Source
}

// NewGenerator returns a Generator drawing from source. The source is
// supplied explicitly; a failing source surfaces on the first New call.
func NewGenerator(source entropy.Source) *Generator {
	return &Generator{source: source}
}

// New returns a version 7 UUID: a 48-bit Unix millisecond timestamp
// followed by 74 freshly drawn random bits. The call blocks while the
// entropy source gathers bits; a source failure is returned as-is and is
// never papered over with weaker randomness. A clock that regressed is
// encoded as read, not treated as an error.
func (g *Generator) New(ctx context.Context) (UUID, error) {
	ms := nowMS()
	if ms < 0 || ms >= 1<<48 {
		return Zero, fmt.Errorf("%w: %d", errClockRange, ms)
	}

	raw, err := g.source.Bits(ctx, randBits)
	if err != nil {
		return Zero, fmt.Errorf("uuid: entropy draw: %w", err)
	}

	// The draw carries 74 bits MSB-first across 10 bytes. Split in the
	// order returned: bits 0-11 are rand_a, bits 12-73 are rand_b.
	randA := uint16(raw[0])<<4 | uint16(raw[1])>>4
	randB := uint64(raw[1]&0x0f)<<58 |
		uint64(raw[2])<<50 |
		uint64(raw[3])<<42 |
		uint64(raw[4])<<34 |
		uint64(raw[5])<<26 |
		uint64(raw[6])<<18 |
		uint64(raw[7])<<10 |
		uint64(raw[8])<<2 |
		uint64(raw[9])>>6

	return makeV7(uint64(ms), randA, randB), nil
}

// NewBatch returns n independently generated version 7 UUIDs. Generation is
// fail-fast: the first failed draw fails the whole batch and no partial
// results are returned.
func (g *Generator) NewBatch(ctx context.Context, n int) ([]UUID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	out := make([]UUID, n)
	for i := range out {
		u, err := g.New(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// makeV7 packs the v7 fields big-endian, most significant first:
// 48-bit timestamp, version 0111, 12-bit rand_a, variant 10, 62-bit rand_b.
func makeV7(ms uint64, randA uint16, randB uint64) UUID {
	var u UUID
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)
	u[6] = 0x70 | byte(randA>>8)&0x0f
	u[7] = byte(randA)
	u[8] = 0x80 | byte(randB>>56)&0x3f
	u[9] = byte(randB >> 48)
	u[10] = byte(randB >> 40)
	u[11] = byte(randB >> 32)
	u[12] = byte(randB >> 24)
	u[13] = byte(randB >> 16)
	u[14] = byte(randB >> 8)
	u[15] = byte(randB)
	return u
}
