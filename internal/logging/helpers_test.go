package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "listener failed", errors.New("boom"), FieldAddr, ":4000")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "addr=:4000") {
		t.Fatalf("expected error and addr fields, got %q", out)
	}
}
