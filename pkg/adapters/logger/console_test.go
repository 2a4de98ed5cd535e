package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/readbench/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelWarn, &buf)

	log.Debug("debug line %d", 1)
	log.Info("info line %d", 2)
	log.Warn("warn line %d", 3)
	log.Error("error line %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn line 3") {
		t.Errorf("expected warn line, got %q", out)
	}
	if !strings.Contains(out, "error line 4") {
		t.Errorf("expected error line, got %q", out)
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelDebug, &buf).WithComponent("verify")

	log.Debug("checked %s", "stdio")

	if got := strings.TrimSpace(buf.String()); got != "[verify] checked stdio" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &buf)

	log.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}
