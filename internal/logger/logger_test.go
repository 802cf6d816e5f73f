package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Writer: &buf})

	log.Info("seed complete", "emotions", 11)

	out := buf.String()
	assert.Contains(t, out, `"msg":"seed complete"`)
	assert.Contains(t, out, `"emotions":11`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestNew_DefaultsToPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Writer: &buf})

	log.Info("listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "INF")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	// Must not panic; output goes nowhere.
	log.Info("invisible")
	log.Error("also invisible")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Info("guidance served", "mood_id", "fear_future", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "guidance served")
	assert.Contains(t, out, "mood_id=fear_future")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "INF")
}

func TestPrettyHandler_LevelLabels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			log.Log(context.Background(), tt.level, "x")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("component", "store")}))
	log.Info("opened")

	assert.Contains(t, buf.String(), "component=store")
}

func TestPrettyHandler_WithGroupQualifiesKeys(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	assert.Equal(t, h, h.WithGroup(""))

	log := slog.New(h.WithGroup("request"))
	log.Info("done", "path", "/api/emotions")

	assert.Contains(t, buf.String(), "request.path=/api/emotions")
}

func TestPrettyHandler_AddSource(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}))

	log.Info("where am I")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Writer: &buf})

	log.WithError(errors.New("store unavailable")).Warn("degraded")

	out := buf.String()
	assert.Contains(t, out, "store unavailable")
	assert.Contains(t, out, "degraded")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelWarn, Format: FormatJSON, Writer: &buf})

	log.Debug("quiet")
	log.Info("quiet too")
	log.Warn("loud")
	log.Error("louder")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "louder")
}
