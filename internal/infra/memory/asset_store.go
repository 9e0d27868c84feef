package memory

import (
	"context"
	"sort"
	"sync"

	"camp-portal/internal/domain"
)

// AssetStore holds cached assets in memory, keyed by cache generation then URL.
type AssetStore struct {
	mu     sync.RWMutex
	caches map[string]map[string]domain.Asset
}

func NewAssetStore() *AssetStore {
	return &AssetStore{caches: make(map[string]map[string]domain.Asset)}
}

func (s *AssetStore) Put(_ context.Context, cache string, asset domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	assets, ok := s.caches[cache]
	if !ok {
		assets = make(map[string]domain.Asset)
		s.caches[cache] = assets
	}
	assets[asset.URL] = asset
	return nil
}

func (s *AssetStore) Get(_ context.Context, cache, url string) (domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.caches[cache][url]
	if !ok {
		return domain.Asset{}, domain.ErrContentNotFound
	}
	return asset, nil
}

func (s *AssetStore) Caches(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *AssetStore) Drop(_ context.Context, cache string) error {
	s.mu.Lock()
	delete(s.caches, cache)
	s.mu.Unlock()
	return nil
}
