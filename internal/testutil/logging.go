package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// TestLogHandler captures log records in memory so tests can assert on what
// was logged without parsing formatted output.
type TestLogHandler struct {
	mu      sync.Mutex
	records []TestLogRecord
}

type TestLogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func NewTestLogHandler() *TestLogHandler {
	return &TestLogHandler{}
}

func (h *TestLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *TestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any)
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.records = append(h.records, TestLogRecord{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})

	return nil
}

func (h *TestLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *TestLogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *TestLogHandler) GetRecords() []TestLogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]TestLogRecord(nil), h.records...)
}

// ContainsMessage reports whether any captured record at the given level has
// a message containing the substring.
func (h *TestLogHandler) ContainsMessage(level slog.Level, substring string) bool {
	for _, record := range h.GetRecords() {
		if record.Level == level && strings.Contains(record.Message, substring) {
			return true
		}
	}
	return false
}

func (h *TestLogHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}
