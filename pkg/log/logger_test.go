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
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-level entries leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestJSONFormatterFields(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &JSONFormatter{})
	l.Info("issued", Str("id", "09dFCDS6P8y"), Int("machine", 3))

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "issued" {
		t.Fatalf("msg: %v", payload["msg"])
	}
	if payload["id"] != "09dFCDS6P8y" {
		t.Fatalf("id field: %v", payload["id"])
	}
	if payload["level"] != "INFO" {
		t.Fatalf("level field: %v", payload["level"])
	}
}

func TestWithAttachesFields(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &TextFormatter{})
	child := l.With(Str("request_id", "abc")).WithComponent("http")
	child.Info("handled")
	out := buf.String()
	if !strings.Contains(out, "request_id=abc") {
		t.Fatalf("missing inherited field: %q", out)
	}
	if !strings.Contains(out, "component=http") {
		t.Fatalf("missing component field: %q", out)
	}

	buf.Reset()
	l.Info("plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("parent logger must not inherit child fields: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{
		"debug": DebugLevel, "info": InfoLevel, "WARN": WarnLevel,
		"error": ErrorLevel, "fatal": FatalLevel, "": InfoLevel,
	} {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %v want %v", name, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestApplyConfig(t *testing.T) {
	l, err := ApplyConfig(&Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if l.GetLevel() != ErrorLevel {
		t.Fatalf("level: %v", l.GetLevel())
	}
	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
