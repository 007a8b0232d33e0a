package mailer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a mock implementation of the Provider interface.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Send(ctx context.Context, msg Message) (*Response, error) {
	args := m.Called(ctx, msg)
	resp, _ := args.Get(0).(*Response)
	return resp, args.Error(1)
}

// logSink collects JSON log records.
type logSink struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *logSink) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(s, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, scanner.Err())
	return out
}

// single returns the only record and its meta group.
func (s *logSink) single(t *testing.T) (map[string]any, map[string]any) {
	t.Helper()
	recs := s.records(t)
	require.Len(t, recs, 1)
	meta, ok := recs[0]["meta"].(map[string]any)
	require.True(t, ok, "record has no meta group: %v", recs[0])
	return recs[0], meta
}
