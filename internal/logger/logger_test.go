package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func resetLogger() {
	Init(Options{})
}

func TestInitLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("input opened")
	Debug("token count")
	if !strings.Contains(buf.String(), "input opened") {
		t.Fatalf("info message missing: %q", buf.String())
	}
	if strings.Contains(buf.String(), "token count") {
		t.Fatalf("debug message logged at info level: %q", buf.String())
	}

	buf.Reset()
	SetLevel(slog.LevelDebug)
	Debug("token count")
	if !strings.Contains(buf.String(), "token count") {
		t.Fatalf("debug message missing after SetLevel: %q", buf.String())
	}

	buf.Reset()
	SetLevel(slog.LevelError)
	Warn("slow input")
	Error("render failed")
	if strings.Contains(buf.String(), "slow input") {
		t.Fatalf("warn logged at error level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "render failed") {
		t.Fatalf("error message missing: %q", buf.String())
	}
}

func TestInitJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	With("input", "page.html").Info("converted", "bytes", 42)
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "converted" || entry["input"] != "page.html" || entry["bytes"] != float64(42) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
