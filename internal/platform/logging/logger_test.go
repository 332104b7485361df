package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesJSONWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	ctx := WithRequestID(context.Background(), "req-42")
	logger.WarnContext(ctx, "standing row skipped", "match_id", "m-1", "error", errors.New("boom"))

	var entry map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "standing row skipped" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["level"] != "WARN" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if entry["request_id"] != "req-42" {
		t.Fatalf("expected request_id field, got %v", entry["request_id"])
	}
	if entry["match_id"] != "m-1" || entry["error"] != "boom" {
		t.Fatalf("unexpected fields: %+v", entry)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Warn("still no panic")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if got := ParseFormat(" Console "); got != FormatConsole {
		t.Fatalf("expected console, got %s", got)
	}
	if got := ParseFormat("logfmt"); got != FormatJSON {
		t.Fatalf("expected json fallback, got %s", got)
	}
}
