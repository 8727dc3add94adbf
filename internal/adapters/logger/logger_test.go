package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/stager/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("provisioning environment")

	out := buf.String()
	if !strings.Contains(out, "provisioning environment") {
		t.Errorf("expected output to contain message, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level, got %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Warn("config file missing, using defaults")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level, got %q", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Error(zerr.New("pip install failed"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level, got %q", out)
	}
	if !strings.Contains(out, "pip install failed") {
		t.Errorf("expected error message, got %q", out)
	}
}
