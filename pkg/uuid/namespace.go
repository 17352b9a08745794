package uuid

// Predefined name spaces from RFC 9562 Appendix C. The byte values are
// fixed by the RFC; any compliant consumer derives the same v5 UUIDs from
// them.
var (
	nsDNS  = UUID{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	nsURL  = UUID{0x6b, 0xa7, 0xb8, 0x11, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	nsOID  = UUID{0x6b, 0xa7, 0xb8, 0x12, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	nsX500 = UUID{0x6b, 0xa7, 0xb8, 0x14, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
)

// NamespaceDNS returns the name space for fully-qualified domain names.
func NamespaceDNS() UUID { return nsDNS }

// NamespaceURL returns the name space for URLs.
func NamespaceURL() UUID { return nsURL }

// NamespaceOID returns the name space for ISO OIDs.
func NamespaceOID() UUID { return nsOID }

// NamespaceX500 returns the name space for X.500 distinguished names.
func NamespaceX500() UUID { return nsX500 }
