package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var seen string
	h := RequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/season", nil))

	if seen == "" || rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("request id = %q, header = %q", seen, rec.Header().Get("X-Request-ID"))
	}
	out := buf.String()
	if strings.Count(out, seen) != 2 {
		t.Errorf("request id should appear in both log lines:\n%s", out)
	}
	if !strings.Contains(out, `"status":418`) {
		t.Errorf("completion log missing status:\n%s", out)
	}
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	h := RequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
