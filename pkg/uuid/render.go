package uuid

import "encoding/hex"

// Format selects a textual rendering of a UUID. The zero value is
// FormatStandard.
type Format int

const (
	// FormatStandard is the hyphenated 8-4-4-4-12 lowercase hex form,
	// 36 characters.
	FormatStandard Format = iota
	// FormatHex is the 32-digit lowercase hex form without separators.
	FormatHex
	// FormatURN prefixes the standard form with "urn:uuid:", 45 characters.
	FormatURN
	// FormatRaw is a debug projection of the 16 raw bytes. Not meant for
	// interoperability, but it still encodes all 128 bits.
	FormatRaw
)

// String returns the format tag.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatURN:
		return "urn"
	case FormatRaw:
		return "raw"
	default:
		return "standard"
	}
}

// ParseFormat maps a format tag to a Format. Unknown tags map to
// FormatStandard rather than failing.
func ParseFormat(tag string) Format {
	switch tag {
	case "hex":
		return FormatHex
	case "urn":
		return FormatURN
	case "raw":
		return FormatRaw
	default:
		return FormatStandard
	}
}

// Render returns the textual form of u. Rendering is pure and total over
// any 16-byte value; unknown formats render as FormatStandard.
func Render(u UUID, f Format) string {
	switch f {
	case FormatHex:
		return hex.EncodeToString(u[:])
	case FormatURN:
		return "urn:uuid:" + renderStandard(u)
	case FormatRaw:
		return renderRaw(u)
	default:
		return renderStandard(u)
	}
}

// Render returns the textual form of u in the given format.
func (u UUID) Render(f Format) string { return Render(u, f) }

// renderStandard writes the 8-4-4-4-12 form with hyphens at byte offsets
// 8, 13, 18 and 23.
func renderStandard(u UUID) string {
	var buf [36]byte
	hex.Encode(buf[:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], u[10:16])
	return string(buf[:])
}

const hexdigits = "0123456789abcdef"

// renderRaw writes the bytes as space-separated hex pairs.
func renderRaw(u UUID) string {
	var buf [47]byte
	for i, v := range u {
		if i > 0 {
			buf[i*3-1] = ' '
		}
		buf[i*3] = hexdigits[v>>4]
		buf[i*3+1] = hexdigits[v&0x0f]
	}
	return string(buf[:])
}
