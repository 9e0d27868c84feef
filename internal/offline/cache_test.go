package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"camp-portal/internal/infra/memory"
)

func newAssetServer(hits *atomic.Int64) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/index.html", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>camp</html>"))
	})
	mux.HandleFunc("/styles.css", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte("body{}"))
	})
	return httptest.NewServer(mux)
}

func TestInstallThenFetchSurvivesOutage(t *testing.T) {
	var hits atomic.Int64
	server := newAssetServer(&hits)
	store := memory.NewAssetStore()
	cache := NewCache("portal-assets-v2", []string{"/index.html", "/styles.css"}, server.URL, store, server.Client())

	ctx := context.Background()
	if err := cache.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 network fetches, got %d", hits.Load())
	}

	// network gone, cached assets still serve
	server.Close()

	asset, err := cache.Fetch(ctx, "/index.html")
	if err != nil {
		t.Fatalf("fetch after outage: %v", err)
	}
	if asset.ContentType != "text/html" || string(asset.Body) != "<html>camp</html>" {
		t.Fatalf("unexpected asset: %+v", asset)
	}
}

func TestInstallFailsOnMissingAsset(t *testing.T) {
	var hits atomic.Int64
	server := newAssetServer(&hits)
	defer server.Close()

	store := memory.NewAssetStore()
	cache := NewCache("portal-assets-v2", []string{"/index.html", "/missing.js"}, server.URL, store, server.Client())

	if err := cache.Install(context.Background()); err == nil {
		t.Fatal("expected install to fail on 404")
	}
}

func TestFetchStoresSameOriginMisses(t *testing.T) {
	var hits atomic.Int64
	server := newAssetServer(&hits)
	store := memory.NewAssetStore()
	cache := NewCache("portal-assets-v2", nil, server.URL, store, server.Client())

	ctx := context.Background()
	if _, err := cache.Fetch(ctx, "/styles.css"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one network fetch, got %d", hits.Load())
	}

	server.Close()
	if _, err := cache.Fetch(ctx, "/styles.css"); err != nil {
		t.Fatalf("second fetch should be cached: %v", err)
	}
}

func TestActivatePrunesOldGenerations(t *testing.T) {
	var hits atomic.Int64
	server := newAssetServer(&hits)
	defer server.Close()

	store := memory.NewAssetStore()

	old := NewCache("portal-assets-v1", []string{"/index.html"}, server.URL, store, server.Client())
	if err := old.Install(context.Background()); err != nil {
		t.Fatalf("install v1: %v", err)
	}

	current := NewCache("portal-assets-v2", []string{"/index.html"}, server.URL, store, server.Client())
	if err := current.Install(context.Background()); err != nil {
		t.Fatalf("install v2: %v", err)
	}
	if err := current.Activate(context.Background()); err != nil {
		t.Fatalf("activate: %v", err)
	}

	names, err := store.Caches(context.Background())
	if err != nil {
		t.Fatalf("caches: %v", err)
	}
	if len(names) != 1 || names[0] != "portal-assets-v2" {
		t.Fatalf("expected only current generation, got %v", names)
	}
}
