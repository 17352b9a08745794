package uuid

import (
	"time"
)

// UUID is a 128-bit RFC 9562 identifier encoded as 16 bytes big-endian.
type UUID [16]byte

// Zero is the all-zero UUID. It is returned alongside errors.
var Zero UUID

// Bytes returns a copy of the raw 16-byte representation.
func (u UUID) Bytes() []byte { b := make([]byte, 16); copy(b, u[:]); return b }

// String returns the standard hyphenated rendering.
func (u UUID) String() string { return Render(u, FormatStandard) }

// MarshalText implements encoding.TextMarshaler using the standard rendering.
func (u UUID) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Version returns the 4-bit version field (bits 48-51).
func (u UUID) Version() int { return int(u[6] >> 4) }

// Variant returns the 2-bit variant field (bits 64-65). RFC 9562 UUIDs
// produced by this package always carry binary 10.
func (u UUID) Variant() int { return int(u[8] >> 6) }

// Timestamp returns the 48-bit millisecond timestamp embedded in a
// version 7 UUID. For other versions the result carries no meaning.
func (u UUID) Timestamp() time.Time {
	ms := int64(u[0])<<40 |
		int64(u[1])<<32 |
		int64(u[2])<<24 |
		int64(u[3])<<16 |
		int64(u[4])<<8 |
		int64(u[5])
	return time.UnixMilli(ms)
}

// Compare returns -1, 0, 1 based on lexical byte comparison.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// IsZero reports whether u is the all-zero UUID.
func (u UUID) IsZero() bool { return u == Zero }
