package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConsoleWritesAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "info", Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("check complete", "path", "/music", "failed", 2)

	out := buf.String()
	if !strings.Contains(out, "INF check complete") {
		t.Fatalf("expected level and message in output, got %q", out)
	}
	if !strings.Contains(out, "path=/music") || !strings.Contains(out, "failed=2") {
		t.Fatalf("expected attrs in output, got %q", out)
	}
}

func TestNewConsoleQuotesSpacedValues(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "debug", Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("sanitize", "reason", "encoder exited 1")

	if !strings.Contains(buf.String(), `reason="encoder exited 1"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "warn", Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed at warn level, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDoesNotPanic(t *testing.T) {
	NewNop().Info("ignored", "key", "value")
}
