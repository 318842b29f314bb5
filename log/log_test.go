package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestScopeAddsOperationAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))

	child := l.Scope(OpBuild)
	child.Info("tree built", "leaf_count", 4)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["op"] != string(OpBuild) {
		t.Errorf("op attribute = %v, want %q", entry["op"], OpBuild)
	}
	if entry["leaf_count"].(float64) != 4 {
		t.Errorf("leaf_count attribute = %v, want 4", entry["leaf_count"])
	}
}

func TestScopeDistinguishesOperations(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))

	l.Scope(OpProve).Info("proved")
	l.Scope(OpVerify).Info("verified")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"op":"prove"`) {
		t.Errorf("first line missing prove op: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"op":"verify"`) {
		t.Errorf("second line missing verify op: %s", lines[1])
	}
}

func TestWithAddsArbitraryContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))

	l.With("k", 3).Info("built")

	if !strings.Contains(buf.String(), `"k":3`) {
		t.Errorf("expected log line to contain k=3, got %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatal("debug message was not filtered by the configured level")
	}

	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Fatal("warn message was filtered unexpectedly")
	}
}

func TestSetDefaultAndDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, nil))

	original := Default()
	defer SetDefault(original)

	SetDefault(l)
	Info("via package function")

	if buf.Len() == 0 {
		t.Fatal("package-level Info did not reach the configured default logger")
	}
}
