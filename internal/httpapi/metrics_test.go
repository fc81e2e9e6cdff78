package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	baseline := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/count-me", "GET", "200"))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/count-me", nil)
	MetricsMiddleware(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/count-me", "GET", "200"))
	if got != baseline+1 {
		t.Fatalf("requests_total = %v, want %v", got, baseline+1)
	}
}

func TestMetricsMiddleware_RecordsStatusLabel(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	baseline := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/unavailable", "GET", "503"))

	rr := httptest.NewRecorder()
	MetricsMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unavailable", nil))

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/unavailable", "GET", "503"))
	if got != baseline+1 {
		t.Fatalf("requests_total{status=503} = %v, want %v", got, baseline+1)
	}
}

// TestMetricsMiddleware_UsesRoutePattern ensures the metrics middleware labels
// by the chi route pattern instead of the raw URL path.
func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := MetricsMiddleware(r)

	baseline := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/readyz", "GET", "200"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/readyz", "GET", "200"))
	if got != baseline+1 {
		t.Fatalf("requests_total{path=/readyz} = %v, want %v", got, baseline+1)
	}
}

func TestRoutePatternOrPath_FallsBackToURLPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/raw/path", nil)
	if got := routePatternOrPath(req); got != "/raw/path" {
		t.Fatalf("routePatternOrPath = %q", got)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{
		0:   "0",
		200: "200",
		404: "404",
		503: "503",
	}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Fatalf("itoa(%d) = %q, want %q", in, got, want)
		}
	}
}
