package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithRequestID(ctx, "req-123")
	ctx = log.WithUserID(ctx, "user-456")

	log.Error(ctx, "boom", errors.New("boom"))

	entry := buf.String()
	for _, field := range []string{`"request_id":"req-123"`, `"user_id":"user-456"`, `"service":"test"`, `"stack"`} {
		if !bytes.Contains([]byte(entry), []byte(field)) {
			t.Fatalf("expected %s in entry %s", field, entry)
		}
	}
}

func TestLoggerLevelFiltersEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: zerolog.WarnLevel, Output: buf})

	ctx := context.Background()
	log.Debug(ctx, "invisible")
	log.Info(ctx, "also invisible")
	log.Warn(ctx, "visible")

	if bytes.Contains(buf.Bytes(), []byte("invisible")) {
		t.Fatalf("entries below the configured level leaked: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("visible")) {
		t.Fatalf("warn entry missing: %s", buf.String())
	}
}

func TestWithFieldsDoesNotMutateParentContext(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	parent := context.Background()
	_ = log.WithFields(parent, map[string]any{"scoped": "yes"})

	log.Info(parent, "plain")
	if bytes.Contains(buf.Bytes(), []byte("scoped")) {
		t.Fatalf("field from child context leaked into parent: %s", buf.String())
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for empty value, got %v", lvl)
	}
	if lvl := ParseLevel("nonsense"); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for unknown value, got %v", lvl)
	}
	if lvl := ParseLevel(" WARN "); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn, got %v", lvl)
	}
}
