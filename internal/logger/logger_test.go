package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerKeepsLinesAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.txt")
	l := New(path)

	l.Info("model loaded", "clips", 3)
	l.Error("load failed", "err", "boom")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "model loaded") || !strings.Contains(lines[0], "clips=3") {
		t.Errorf("Expected first line to carry message and attrs, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "level=ERROR") {
		t.Errorf("Expected error level on second line, got %q", lines[1])
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("Expected 2 lines on disk, got %d", got)
	}
}

func TestLoggerMemoryOnly(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Info("tick")
	}
	if got := len(l.Lines()); got != maxLines {
		t.Errorf("Expected history capped at %d, got %d", maxLines, got)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close without file should be nil, got %v", err)
	}
}
