package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailkit/internal/emails"
	"github.com/dmitrymomot/emailkit/pkg/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, providerMock, cfg.Provider)
	assert.Equal(t, "/emails/{name}", cfg.PreviewRoute)
	assert.Equal(t, "🙈", cfg.Mailer.RedactionMarker)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EMAIL_PROVIDER=SMTP\nSMTP_HOST=mail.example.com\nSMTP_PORT=2525\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":9090")
	t.Cleanup(func() {
		os.Unsetenv("EMAIL_PROVIDER")
		os.Unsetenv("SMTP_HOST")
		os.Unsetenv("SMTP_PORT")
	})

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, providerSMTP, cfg.Provider)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "pigeon")
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "EMAIL_PROVIDER")

	t.Setenv("EMAIL_PROVIDER", "resend")
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "RESEND_API_KEY")
}

func TestNewRegistry_MockProvider(t *testing.T) {
	t.Parallel()

	cfg := &config{Provider: providerMock}
	r, err := newRegistry(cfg, logger.NewNope(), prometheus.NewRegistry())
	require.NoError(t, err)
	assert.True(t, r.Mock())
}

func TestNewRegistry_SMTPProvider(t *testing.T) {
	t.Parallel()

	cfg := &config{Provider: providerSMTP}
	cfg.SMTP.Host = "mail.example.com"
	cfg.SMTP.Port = 587
	cfg.SMTP.TLSMode = "auto"
	cfg.SMTP.Timeout = time.Second
	cfg.SMTP.From = "noreply@example.com"

	r, err := newRegistry(cfg, logger.NewNope(), prometheus.NewRegistry())
	require.NoError(t, err)
	assert.False(t, r.Mock())
}

func TestRouter(t *testing.T) {
	t.Parallel()

	r, err := newRegistry(&config{Provider: providerMock}, logger.NewNope(), prometheus.NewRegistry())
	require.NoError(t, err)
	catalog, err := emails.New(r)
	require.NoError(t, err)

	h, err := newRouter(&config{PreviewRoute: "/emails/:name"}, logger.NewNope(), catalog)
	require.NoError(t, err)

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/emails/welcome", http.StatusOK, "Get started"},
		{"/emails/password-reset", http.StatusOK, "Reset password"},
		{"/emails/nope", http.StatusNotFound, "Email not found"},
		{"/emails", http.StatusOK, "/emails/account-deleted"},
		{"/metrics", http.StatusOK, ""},
		{"/health/live", http.StatusOK, "OK"},
		{"/health/ready", http.StatusOK, "OK"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, rec.Code, tc.path)
		assert.Contains(t, rec.Body.String(), tc.body, tc.path)
	}

	_, err = newRouter(&config{PreviewRoute: "/emails"}, logger.NewNope(), catalog)
	require.Error(t, err)
}

func TestServeContext_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	go func() { done <- serveContext(ctx, "127.0.0.1:0", h, logger.NewNope(), ready) }()

	addr := <-ready
	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
