package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newCaptureLogger(level Level, formatter Formatter) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewWriterOutput(buf)),
	)
	return l, buf
}

func TestLevelGating(t *testing.T) {
	l, buf := newCaptureLogger(WarnLevel, &TextFormatter{})
	l.Debug("drop me")
	l.Info("drop me too")
	l.Warn("keep me")
	l.Error("keep me too")

	out := buf.String()
	if strings.Contains(out, "drop me") {
		t.Fatalf("below-level entries written: %q", out)
	}
	if !strings.Contains(out, "keep me") || !strings.Contains(out, "keep me too") {
		t.Fatalf("expected warn and error entries: %q", out)
	}
}

func TestSetLevelSharedAcrossDerived(t *testing.T) {
	l, buf := newCaptureLogger(ErrorLevel, &TextFormatter{})
	derived := l.WithComponent("entropy")
	derived.Info("hidden")
	l.SetLevel(DebugLevel)
	derived.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("entry leaked before SetLevel: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("entry missing after SetLevel: %q", out)
	}
	if l.GetLevel() != DebugLevel {
		t.Fatalf("GetLevel: got %v", l.GetLevel())
	}
}

func TestTextFormatterFields(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &TextFormatter{})
	l.Info("node answered", Str("node", "n1"), Int("bits", 74))

	out := buf.String()
	for _, want := range []string{"INFO", "node answered", "node=n1", "bits=74"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &JSONFormatter{})
	l.With(Component("entropy")).Info("connected", Str("node", "n1"))

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("not JSON: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "connected" {
		t.Fatalf("msg: got %v", payload["msg"])
	}
	if payload["level"] != "INFO" {
		t.Fatalf("level: got %v", payload["level"])
	}
	if payload["component"] != "entropy" {
		t.Fatalf("component field lost: %v", payload)
	}
	if payload["node"] != "n1" {
		t.Fatalf("entry field lost: %v", payload)
	}
}

func TestErrField(t *testing.T) {
	f := Err(nil)
	if f.Key != "error" || f.Value != nil {
		t.Fatalf("nil error field: %+v", f)
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	l := NewNop()
	l.Info("anything", Str("k", "v"))
	l.WithComponent("x").Error("still nothing")
}
