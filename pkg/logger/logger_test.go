package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/limbo/cocoon/pkg/config"
	"github.com/limbo/cocoon/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		In   string
		Want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range testCases {
		t.Run(tc.In, func(t *testing.T) {
			assert.Equal(t, tc.Want, logger.ParseLevel(tc.In))
		})
	}
}

func TestNewSetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	l := logger.New(config.LogConfig{Level: "debug", Format: "json"})
	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "42"))
	ctx := logger.WithLogger(context.Background(), l)
	logger.FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=42")
}
