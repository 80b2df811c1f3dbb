package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogging_CapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	w := httptest.NewRecorder()
	Logging(logger, next).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	line := buf.String()
	if !strings.Contains(line, "status=404") {
		t.Fatalf("expected status=404 in log line, got %s", line)
	}
	if !strings.Contains(line, "path=/api/events/missing") {
		t.Fatalf("expected path in log line, got %s", line)
	}
}

func TestLogging_DefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	Logging(logger, next).ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "status=200") {
		t.Fatalf("expected status=200 in log line, got %s", buf.String())
	}
}
