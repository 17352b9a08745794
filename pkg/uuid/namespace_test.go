package uuid

import (
	"bytes"
	"testing"

	guuid "github.com/google/uuid"
)

func TestNamespaceConstants(t *testing.T) {
	cases := []struct {
		name string
		got  UUID
		want string
	}{
		{"dns", NamespaceDNS(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"url", NamespaceURL(), "6ba7b811-9dad-11d1-80b4-00c04fd430c8"},
		{"oid", NamespaceOID(), "6ba7b812-9dad-11d1-80b4-00c04fd430c8"},
		{"x500", NamespaceX500(), "6ba7b814-9dad-11d1-80b4-00c04fd430c8"},
	}
	for _, tc := range cases {
		if tc.got.String() != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, tc.got, tc.want)
		}
	}
}

// The constants must be byte-for-byte what every other RFC-compliant
// implementation carries.
func TestNamespaceConstantsMatchReference(t *testing.T) {
	cases := []struct {
		name string
		got  UUID
		ref  guuid.UUID
	}{
		{"dns", NamespaceDNS(), guuid.NameSpaceDNS},
		{"url", NamespaceURL(), guuid.NameSpaceURL},
		{"oid", NamespaceOID(), guuid.NameSpaceOID},
		{"x500", NamespaceX500(), guuid.NameSpaceX500},
	}
	for _, tc := range cases {
		if !bytes.Equal(tc.got.Bytes(), tc.ref[:]) {
			t.Fatalf("%s: got % x want % x", tc.name, tc.got.Bytes(), tc.ref[:])
		}
	}
}
