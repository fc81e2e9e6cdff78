package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLogger_EmitsDebugLine(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { zlog = nil })

	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	out := buf.String()
	if !strings.Contains(out, "http request") || !strings.Contains(out, "/readyz") {
		t.Fatalf("missing request log: %q", out)
	}
	if !strings.Contains(out, "request_id") {
		t.Fatalf("missing request_id field: %q", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Fatalf("missing status field: %q", out)
	}
}

func TestRequestLogger_QuietWithoutLogger(t *testing.T) {
	zlog = nil
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
