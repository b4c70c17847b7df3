package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the log file, relative to the working directory (project root when run via go run ./cmd/eightball).
const LogFilePath = "logs/eightball.txt"

// maxLines caps the in-memory history shown by the debug overlay.
const maxLines = 256

// Logger writes leveled records through slog. Each record is kept in memory (for the on-screen
// debug log) and appended to a file on disk. A missing or unwritable file only disables the disk copy.
type Logger struct {
	mu    sync.Mutex
	lines []string
	file  *os.File
	log   *slog.Logger
}

// New returns a Logger appending to path. The parent directory is created if needed.
// An empty path keeps records in memory only.
func New(path string) *Logger {
	l := &Logger{lines: make([]string, 0)}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			l.file = f
		}
	}
	h := slog.NewTextHandler(sink{l}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05"))
			}
			return a
		},
	})
	l.log = slog.New(h)
	return l
}

// sink receives one formatted record per Write from the text handler.
type sink struct{ l *Logger }

func (s sink) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	s.l.mu.Lock()
	s.l.lines = append(s.l.lines, line)
	if len(s.l.lines) > maxLines {
		s.l.lines = s.l.lines[len(s.l.lines)-maxLines:]
	}
	f := s.l.file
	s.l.mu.Unlock()
	if f != nil {
		_, _ = io.WriteString(f, line+"\n")
	}
	return len(p), nil
}

// Info logs an informational record with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) { l.log.Info(msg, args...) }

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string, args ...any) { l.log.Warn(msg, args...) }

// Error logs a failure. Nothing in the toy is fatal, so callers keep running afterwards.
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

// Debug logs chatty per-interaction detail.
func (l *Logger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }

// Lines returns a copy of the retained records, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file. Further records stay in memory.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
