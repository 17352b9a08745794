package uuid

import (
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	a := UUID{0: 1}
	b := UUID{0: 2}
	if a.Compare(b) != -1 {
		t.Fatalf("expected a<b")
	}
	if b.Compare(a) != 1 {
		t.Fatalf("expected b>a")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected a==a")
	}
	// Differences in the last byte still order.
	c := UUID{15: 1}
	if Zero.Compare(c) != -1 {
		t.Fatalf("expected zero<c")
	}
}

func TestBytesCopies(t *testing.T) {
	u := UUID{0: 0xaa, 15: 0xbb}
	b := u.Bytes()
	if len(b) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(b))
	}
	b[0] = 0
	if u[0] != 0xaa {
		t.Fatalf("Bytes must not alias the UUID")
	}
}

func TestTimestampExtraction(t *testing.T) {
	ms := int64(1724670000123)
	u := makeV7(uint64(ms), 0, 0)
	if got := u.Timestamp(); !got.Equal(time.UnixMilli(ms)) {
		t.Fatalf("timestamp: got %v want %v", got, time.UnixMilli(ms))
	}
}

func TestVersionVariantAccessors(t *testing.T) {
	v7 := makeV7(1, 0, 0)
	if v7.Version() != 7 {
		t.Fatalf("v7 version: got %d", v7.Version())
	}
	if v7.Variant() != 0b10 {
		t.Fatalf("v7 variant: got %b", v7.Variant())
	}
	v5 := NewV5(NamespaceDNS(), []byte("x"))
	if v5.Version() != 5 {
		t.Fatalf("v5 version: got %d", v5.Version())
	}
	if v5.Variant() != 0b10 {
		t.Fatalf("v5 variant: got %b", v5.Variant())
	}
}

func TestMarshalText(t *testing.T) {
	u := NewV5(NamespaceDNS(), []byte("example.com"))
	b, err := u.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != u.String() {
		t.Fatalf("text %q != string %q", b, u.String())
	}
}

func TestIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Fatalf("Zero should be zero")
	}
	if (UUID{15: 1}).IsZero() {
		t.Fatalf("non-zero value reported zero")
	}
}
