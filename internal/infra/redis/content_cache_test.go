package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"camp-portal/internal/content"
	"camp-portal/internal/domain"
	"camp-portal/internal/infra/memory"
)

func TestContentCacheCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		ContentLoader: memory.NewStaticContentLoader(content.Camp()),
	}
	cache := NewContentCache(client, loader, time.Minute)

	got, err := cache.GetContent(context.Background())
	if err != nil {
		t.Fatalf("get content: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if len(got.Quiz.Questions) != 5 {
		t.Fatalf("expected 5 quiz questions, got %d", len(got.Quiz.Questions))
	}

	// Second call should hit Redis, loader not incremented.
	got, err = cache.GetContent(context.Background())
	if err != nil {
		t.Fatalf("get content 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(got.Labyrinth.Monsters) == 0 || got.Labyrinth.Monsters[0].Health != 40 {
		t.Fatalf("labyrinth data lost in cache round trip: %+v", got.Labyrinth.Monsters)
	}
}

func TestContentCacheSurvivesCorruptEntry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	mr.Set(contentCacheKey, "{not json")

	loader := &countingLoader{
		ContentLoader: memory.NewStaticContentLoader(content.Camp()),
	}
	cache := NewContentCache(client, loader, time.Minute)

	if _, err := cache.GetContent(context.Background()); err != nil {
		t.Fatalf("get content over corrupt cache: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader fallback, calls=%d", loader.calls)
	}
}

type countingLoader struct {
	memory.ContentLoader
	calls int
}

func (l *countingLoader) LoadContent(ctx context.Context) (domain.CampContent, error) {
	l.calls++
	return l.ContentLoader.LoadContent(ctx)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
