package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLevel Проверяет разбор строкового уровня логирования.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

// TestConvertFields Проверяет конвертацию Fields в пары ключ-значение.
func TestConvertFields(t *testing.T) {
	args := convertFields([]Field{
		String("name", "web-01"),
		Int("priority", 3),
		Int64("id", 42),
	})

	assert.Equal(t, []any{"name", "web-01", "priority", "3", "id", "42"}, args)
}

// TestSlogAdapter Проверяет, что адаптер пишет сообщение и поля.
func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := &SlogAdapter{
		slog: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	adapter.Info("Сервер добавлен", String("name", "web-01"), Int64("id", 42))

	out := buf.String()
	assert.Contains(t, out, "Сервер добавлен")
	assert.Contains(t, out, "name=web-01")
	assert.Contains(t, out, "id=42")

	buf.Reset()
	adapter.Debug("отладка")
	assert.Contains(t, buf.String(), "level=DEBUG")

	// без closer закрытие безопасно
	require.NoError(t, adapter.Close())
}
