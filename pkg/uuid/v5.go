package uuid

import (
	"crypto/sha1"
	"errors"
	"fmt"
)

// ErrInvalidNamespace reports a raw namespace that is not exactly 16 bytes.
// Namespaces are never truncated or padded.
var ErrInvalidNamespace = errors.New("uuid: namespace must be exactly 16 bytes")

// NewV5 derives a deterministic version 5 UUID from a namespace and a name.
//
// The result is the first 16 bytes of SHA-1(namespace || name) with the
// version nibble of byte 6 forced to 5 and the top two bits of byte 8
// forced to binary 10. Every other digest bit passes through verbatim.
// The name is not interpreted; an empty name is valid.
func NewV5(ns UUID, name []byte) UUID {
	h := sha1.New()
	h.Write(ns[:])
	h.Write(name)
	sum := h.Sum(nil)

	var u UUID
	copy(u[:], sum[:16])
	u[6] = (u[6] & 0x0f) | 0x50 // version 5
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10
	return u
}

// NewV5String is NewV5 over the UTF-8 bytes of name.
func NewV5String(ns UUID, name string) UUID { return NewV5(ns, []byte(name)) }

// NewV5FromBytes is NewV5 for callers holding the namespace as a raw byte
// slice. A namespace of any length other than 16 is rejected with
// ErrInvalidNamespace.
func NewV5FromBytes(ns, name []byte) (UUID, error) {
	if len(ns) != 16 {
		return Zero, fmt.Errorf("%w: got %d", ErrInvalidNamespace, len(ns))
	}
	var u UUID
	copy(u[:], ns)
	return NewV5(u, name), nil
}
