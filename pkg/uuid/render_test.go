package uuid

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	guuid "github.com/google/uuid"
)

var renderSample = NewV5(NamespaceDNS(), []byte("example.com"))

func TestRenderStandard(t *testing.T) {
	s := Render(renderSample, FormatStandard)
	if len(s) != 36 {
		t.Fatalf("standard length: got %d", len(s))
	}
	for _, pos := range []int{8, 13, 18, 23} {
		if s[pos] != '-' {
			t.Fatalf("expected hyphen at offset %d in %s", pos, s)
		}
	}
	if s != strings.ToLower(s) {
		t.Fatalf("standard must be lowercase: %s", s)
	}
}

func TestRenderHex(t *testing.T) {
	s := Render(renderSample, FormatHex)
	if len(s) != 32 {
		t.Fatalf("hex length: got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("not hex: %v", err)
	}
	if !bytes.Equal(b, renderSample.Bytes()) {
		t.Fatalf("hex rendering lost bits")
	}
}

func TestRenderURN(t *testing.T) {
	s := Render(renderSample, FormatURN)
	if len(s) != 45 {
		t.Fatalf("urn length: got %d", len(s))
	}
	if s != "urn:uuid:"+Render(renderSample, FormatStandard) {
		t.Fatalf("urn: got %s", s)
	}
}

func TestRenderRawLossless(t *testing.T) {
	s := Render(renderSample, FormatRaw)
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("raw not re-decodable: %v", err)
	}
	if !bytes.Equal(b, renderSample.Bytes()) {
		t.Fatalf("raw rendering lost bits")
	}
}

func TestRenderUnknownFallsBackToStandard(t *testing.T) {
	if Render(renderSample, Format(99)) != Render(renderSample, FormatStandard) {
		t.Fatalf("unknown format must render as standard")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"standard": FormatStandard,
		"hex":      FormatHex,
		"urn":      FormatURN,
		"raw":      FormatRaw,
		"":         FormatStandard,
		"URN":      FormatStandard, // tags are case-sensitive; unknown maps to standard
		"bogus":    FormatStandard,
	}
	for tag, want := range cases {
		if got := ParseFormat(tag); got != want {
			t.Fatalf("ParseFormat(%q): got %v want %v", tag, got, want)
		}
	}
	for _, f := range []Format{FormatStandard, FormatHex, FormatURN, FormatRaw} {
		if ParseFormat(f.String()) != f {
			t.Fatalf("tag round trip failed for %v", f)
		}
	}
}

// The standard rendering must round-trip through an independent parser.
func TestStandardRoundTripsThroughReference(t *testing.T) {
	ref, err := guuid.Parse(renderSample.String())
	if err != nil {
		t.Fatalf("reference parse: %v", err)
	}
	if !bytes.Equal(ref[:], renderSample.Bytes()) {
		t.Fatalf("round trip lost bits: %s", renderSample)
	}
}
