package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger creates a test logger that captures output.
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger creates a new test logger that captures output.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	buf := &bytes.Buffer{}
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel) // Capture all levels in tests

	logger := New(buf)

	t.Cleanup(func() {
		zerolog.SetGlobalLevel(oldLevel)
	})

	return &TestLogger{
		Logger: &logger,
		Buffer: buf,
	}
}

// Contains reports whether the captured output contains the substring.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Buffer.String(), substr)
}

// Lines returns the captured output split into lines.
func (tl *TestLogger) Lines() []string {
	out := strings.TrimSpace(tl.Buffer.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
