package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"camp-portal/internal/app"
	"camp-portal/internal/content"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewSessionStore(newClient(mr), time.Minute)

	store.Put(app.NewSession("sess-1", content.Camp()))
	if !mr.Exists("portal:session:sess-1") {
		t.Fatalf("expected redis key to be set")
	}
	if _, ok := store.Get("sess-1"); !ok {
		t.Fatalf("expected session in local map")
	}

	store.Delete("sess-1")
	if mr.Exists("portal:session:sess-1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, ok := store.Get("sess-1"); ok {
		t.Fatalf("expected session gone from local map")
	}
}
