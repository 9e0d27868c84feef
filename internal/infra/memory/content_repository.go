package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"camp-portal/internal/domain"
)

// contentKey is the fixed cache key: there is exactly one content bundle.
const contentKey = "camp"

// ContentLoader fetches camp content from a backing store (e.g., Postgres).
type ContentLoader interface {
	LoadContent(ctx context.Context) (domain.CampContent, error)
}

// ContentRepository caches the content bundle with TTL to avoid repeated
// backing-store hits.
type ContentRepository struct {
	loader ContentLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    domain.CampContent
	expiresAt time.Time
}

func NewContentRepository(loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ContentRepository) GetContent(ctx context.Context) (domain.CampContent, error) {
	now := r.clock()

	r.mu.RLock()
	if r.expiresAt.After(now) {
		content := r.cached
		r.mu.RUnlock()
		return content, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(contentKey, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.expiresAt.After(now) {
			content := r.cached
			r.mu.RUnlock()
			return content, nil
		}
		r.mu.RUnlock()

		content, err := r.loader.LoadContent(ctx)
		if err != nil {
			return domain.CampContent{}, err
		}

		r.mu.Lock()
		r.cached = content
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return content, nil
	})
	if err != nil {
		return domain.CampContent{}, err
	}
	return result.(domain.CampContent), nil
}

// StaticContentLoader serves a fixed in-memory bundle (the embedded camp data,
// or fixtures in tests).
type StaticContentLoader struct {
	content domain.CampContent
}

func NewStaticContentLoader(content domain.CampContent) *StaticContentLoader {
	return &StaticContentLoader{content: content}
}

func (l *StaticContentLoader) LoadContent(_ context.Context) (domain.CampContent, error) {
	return l.content, nil
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
