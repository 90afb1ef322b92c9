package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level    string
		format   string
		expected slog.Level
	}{
		{"debug", "json", slog.LevelDebug},
		{"info", "json", slog.LevelInfo},
		{"warn", "text", slog.LevelWarn},
		{"error", "text", slog.LevelError},
		{"invalid", "json", slog.LevelInfo}, // Defaults to info
		{"", "", slog.LevelInfo},            // Defaults to info + json
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			log := New(tt.level, tt.format)
			if log == nil {
				t.Fatal("expected non-nil logger")
			}
			if !log.Enabled(context.Background(), tt.expected) {
				t.Errorf("expected level %v to be enabled", tt.expected)
			}
		})
	}
}
