package installer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"modelget/pkg/types"
)

// oneGroup builds a manifest with a single group of (path, url) pairs.
func oneGroup(name string, pairs ...[2]string) *types.Manifest {
	g := types.AssetGroup{Name: name}
	for _, p := range pairs {
		g.Assets = append(g.Assets, types.AssetEntry{Path: p[0], URL: p[1]})
	}
	return &types.Manifest{Groups: []types.AssetGroup{g}}
}

// assetServer serves fixed bodies by URL path and counts every request.
type assetServer struct {
	*httptest.Server
	hits atomic.Int64
}

func newAssetServer(t *testing.T, files map[string]string) *assetServer {
	t.Helper()
	s := &assetServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func newInstaller(t *testing.T, man *types.Manifest, cfg Config) *Installer {
	t.Helper()
	ins, err := New(man, cfg)
	if err != nil {
		t.Fatalf("new installer: %v", err)
	}
	return ins
}

// testCtx returns a context with a generous timeout, canceled on cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	t.Cleanup(cancel)
	return c
}

// roundTripFunc fakes HTTP responses without a network listener.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
