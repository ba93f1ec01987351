package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/erazemk/evidenca/internal/api"
)

func TestLevelRouterTagsRequestID(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	prev := slog.Default()
	slog.SetDefault(slog.New(&levelRouter{
		stdout: slog.NewTextHandler(&stdout, opts),
		stderr: slog.NewTextHandler(&stderr, opts),
	}))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := api.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.InfoContext(r.Context(), "asset registered")
		slog.ErrorContext(r.Context(), "failed to save asset image")
	}))

	req := httptest.NewRequest("GET", "/api/assets/1", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
		if !strings.Contains(line, "request_id=req-42") {
			t.Errorf("stdout line missing request id: %s", line)
		}
	}
	if !strings.Contains(stderr.String(), "failed to save asset image") || !strings.Contains(stderr.String(), "request_id=req-42") {
		t.Errorf("expected tagged error on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "failed to save asset image") {
		t.Error("errors must not go to stdout")
	}

	stdout.Reset()
	slog.Info("outside a request")
	if strings.Contains(stdout.String(), "request_id") {
		t.Errorf("records outside a request must not carry a request id: %s", stdout.String())
	}
}

func TestGeneratePassword(t *testing.T) {
	a, err := generatePassword(16)
	if err != nil {
		t.Fatalf("generatePassword: %v", err)
	}
	b, _ := generatePassword(16)
	if len(a) != 16 || a == b {
		t.Errorf("expected two distinct 16 character passwords, got %q and %q", a, b)
	}
}
