package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"camp-portal/internal/domain"
)

// assetCachesKey is the set of known cache generation names.
const assetCachesKey = "portal:asset-caches"

// AssetStore keeps cached portal assets in Redis so every instance serves the
// same offline bundle. Assets live under portal:assets:{cache}:{url}; each
// cache generation tracks its member URLs in a set for pruning.
type AssetStore struct {
	client *redis.Client
}

func NewAssetStore(client *redis.Client) *AssetStore {
	return &AssetStore{client: client}
}

func (s *AssetStore) Put(ctx context.Context, cache string, asset domain.Asset) error {
	blob, err := json.Marshal(asset)
	if err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.assetKey(cache, asset.URL), blob, 0)
	pipe.SAdd(ctx, s.membersKey(cache), asset.URL)
	pipe.SAdd(ctx, assetCachesKey, cache)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *AssetStore) Get(ctx context.Context, cache, url string) (domain.Asset, error) {
	blob, err := s.client.Get(ctx, s.assetKey(cache, url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Asset{}, domain.ErrContentNotFound
	}
	if err != nil {
		return domain.Asset{}, err
	}
	var asset domain.Asset
	if err := json.Unmarshal(blob, &asset); err != nil {
		return domain.Asset{}, err
	}
	return asset, nil
}

func (s *AssetStore) Caches(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, assetCachesKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *AssetStore) Drop(ctx context.Context, cache string) error {
	urls, err := s.client.SMembers(ctx, s.membersKey(cache)).Result()
	if err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	for _, url := range urls {
		pipe.Del(ctx, s.assetKey(cache, url))
	}
	pipe.Del(ctx, s.membersKey(cache))
	pipe.SRem(ctx, assetCachesKey, cache)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *AssetStore) assetKey(cache, url string) string {
	return "portal:assets:" + cache + ":" + url
}

func (s *AssetStore) membersKey(cache string) string {
	return "portal:assets:" + cache + ":members"
}
