package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))

	logger.Info("hello",
		String("seq", "prime"),
		Int("count", 3),
		Uint64("index", 42),
	)

	out := buf.String()
	for _, want := range []string{`"seq":"prime"`, `"count":3`, `"index":42`, `"message":"hello"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output missing %s: %q", want, out)
		}
	}
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))

	logger.Error("failed", errors.New("boom"))
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("Log output missing the error: %q", buf.String())
	}
}

func TestNewLoggerComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sieve")

	logger.Debug("starting")
	if !strings.Contains(buf.String(), `"component":"sieve"`) {
		t.Errorf("Log output missing the component tag: %q", buf.String())
	}
}
