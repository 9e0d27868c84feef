package redis

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"camp-portal/internal/domain"
)

func TestAssetStoreRoundTripAndDrop(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewAssetStore(newClient(mr))
	ctx := context.Background()

	asset := domain.Asset{URL: "/styles.css", ContentType: "text/css", Body: []byte("body{}")}
	if err := store.Put(ctx, "portal-assets-v1", asset); err != nil {
		t.Fatalf("put v1: %v", err)
	}
	if err := store.Put(ctx, "portal-assets-v2", domain.Asset{URL: "/app.js", ContentType: "text/javascript"}); err != nil {
		t.Fatalf("put v2: %v", err)
	}

	got, err := store.Get(ctx, "portal-assets-v1", "/styles.css")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ContentType != "text/css" || string(got.Body) != "body{}" {
		t.Fatalf("unexpected asset: %+v", got)
	}

	names, err := store.Caches(ctx)
	if err != nil {
		t.Fatalf("caches: %v", err)
	}
	if len(names) != 2 || names[0] != "portal-assets-v1" || names[1] != "portal-assets-v2" {
		t.Fatalf("unexpected cache names: %v", names)
	}

	if err := store.Drop(ctx, "portal-assets-v1"); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := store.Get(ctx, "portal-assets-v1", "/styles.css"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected miss after drop, got %v", err)
	}
	names, _ = store.Caches(ctx)
	if len(names) != 1 || names[0] != "portal-assets-v2" {
		t.Fatalf("expected only v2 to remain, got %v", names)
	}
	if _, err := store.Get(ctx, "portal-assets-v2", "/app.js"); err != nil {
		t.Fatalf("surviving cache lost asset: %v", err)
	}
}
