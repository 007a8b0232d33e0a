package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("email sent", slog.String("tag", "email"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "email sent", rec["msg"])
	assert.Equal(t, "email", rec["tag"])
}

func TestNew_TextAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Output: &buf, Format: "TEXT", Level: "warn"})
	require.NoError(t, err)

	log.Info("skipped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Format: "xml"})
	require.Error(t, err)

	_, err = New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var info, errs bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(h).With(slog.String("tag", "email"))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("sent")
	log.Error("failed")

	assert.Contains(t, info.String(), "msg=sent")
	assert.Contains(t, info.String(), "msg=failed")
	assert.NotContains(t, errs.String(), "msg=sent")
	assert.Contains(t, errs.String(), "tag=email")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	log := Default()
	_, ok := log.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "default logger writes JSON")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		NewNope().Error("discarded")
	})
}
