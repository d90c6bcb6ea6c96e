package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestCloudRunHandlerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelInfo)).With("uid", "uid-1")

	log.Warn("store unavailable", "error", errors.New("connection refused"), "attempt", 2)

	var event struct {
		Severity string         `json:"severity"`
		Message  string         `json:"message"`
		Time     string         `json:"time"`
		Data     map[string]any `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if event.Severity != "WARNING" || event.Message != "store unavailable" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Time == "" {
		t.Fatalf("time missing")
	}
	if event.Data["uid"] != "uid-1" {
		t.Fatalf("static attr missing: %+v", event.Data)
	}
	if event.Data["error"] != "connection refused" {
		t.Fatalf("error not rendered as text: %+v", event.Data)
	}
	if event.Data["attempt"] != float64(2) {
		t.Fatalf("attempt = %v", event.Data["attempt"])
	}
}

func TestCloudRunHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelWarn))

	log.Info("dropped")
	log.Debug("dropped")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}

func TestNewParsesLevel(t *testing.T) {
	var got slog.Level
	New("debug", func(level slog.Level) slog.Handler {
		got = level
		return NewTestHandler(level)
	})
	if got != slog.LevelDebug {
		t.Fatalf("level = %v, want debug", got)
	}

	New("nonsense", func(level slog.Level) slog.Handler {
		got = level
		return NewTestHandler(level)
	})
	if got != slog.LevelInfo {
		t.Fatalf("level = %v, want info fallback", got)
	}
}
