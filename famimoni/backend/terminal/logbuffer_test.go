package terminal

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(entries []LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestLogBufferWrapsAround(t *testing.T) {
	lb := NewLogBuffer(3)
	for _, m := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Level: slog.LevelInfo, Message: m})
	}

	assert.Equal(t, []string{"d", "c", "b"}, messages(lb.GetRecent(0, slog.LevelDebug)))
	assert.Equal(t, []string{"d", "c"}, messages(lb.GetRecent(2, slog.LevelDebug)))

	lb.Clear()
	assert.Empty(t, lb.GetRecent(0, slog.LevelDebug))
}

func TestLogBufferFiltersLevel(t *testing.T) {
	lb := NewLogBuffer(10)
	lb.Add(LogEntry{Level: slog.LevelDebug, Message: "debug"})
	lb.Add(LogEntry{Level: slog.LevelWarn, Message: "warn"})
	lb.Add(LogEntry{Level: slog.LevelInfo, Message: "info"})

	assert.Equal(t, []string{"info", "warn"}, messages(lb.GetRecent(0, slog.LevelInfo)))
	assert.Equal(t, []string{"warn"}, messages(lb.GetRecent(1, slog.LevelWarn)))
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelInfo))

	logger.Debug("dropped")
	logger.Info("Line submitted", "line", "0400?")
	logger.With("frame", 3).WithGroup("pad").Warn("Pressed", "button", "A")

	got := lb.GetRecent(0, slog.LevelDebug)
	require.Len(t, got, 2)
	assert.Equal(t, "frame=3 pad.button=A", got[0].Message[len("Pressed "):])
	assert.Equal(t, slog.LevelWarn, got[0].Level)
	assert.Equal(t, "Line submitted line=0400?", got[1].Message)
}

func TestFormatLogEntry(t *testing.T) {
	when := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "13:04:05 [DBG] hi"},
		{slog.LevelInfo, "13:04:05 [INF] hi"},
		{slog.LevelWarn, "13:04:05 [WRN] hi"},
		{slog.LevelError, "13:04:05 [ERR] hi"},
		{slog.Level(2), "13:04:05 [???] hi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLogEntry(LogEntry{Time: when, Level: tt.level, Message: "hi"}))
	}
}
