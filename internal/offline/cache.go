package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"camp-portal/internal/domain"
)

// Store persists fetched assets under named caches.
type Store interface {
	Put(ctx context.Context, cache string, asset domain.Asset) error
	Get(ctx context.Context, cache, url string) (domain.Asset, error)
	Caches(ctx context.Context) ([]string, error)
	Drop(ctx context.Context, cache string) error
}

// Cache serves portal assets cache-first so the camp survives flaky mortal
// networks. Install pre-warms the active cache, Activate prunes stale ones.
type Cache struct {
	name   string
	urls   []string
	origin string
	store  Store
	client *http.Client
}

func NewCache(name string, urls []string, origin string, store Store, client *http.Client) *Cache {
	if client == nil {
		client = http.DefaultClient
	}
	return &Cache{
		name:   name,
		urls:   urls,
		origin: strings.TrimSuffix(origin, "/"),
		store:  store,
		client: client,
	}
}

func (c *Cache) Name() string { return c.name }

// Install fetches every precache URL and stores it. Any failed fetch fails
// the whole install, leaving the previous cache generation intact.
func (c *Cache) Install(ctx context.Context) error {
	for _, url := range c.urls {
		asset, err := c.fetch(ctx, url)
		if err != nil {
			return fmt.Errorf("install %s: %w", url, err)
		}
		if err := c.store.Put(ctx, c.name, asset); err != nil {
			return fmt.Errorf("install %s: %w", url, err)
		}
	}
	return nil
}

// Activate drops every cache generation except the current one.
func (c *Cache) Activate(ctx context.Context) error {
	names, err := c.store.Caches(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == c.name {
			continue
		}
		if err := c.store.Drop(ctx, name); err != nil {
			return fmt.Errorf("drop cache %s: %w", name, err)
		}
	}
	return nil
}

// Fetch returns the cached asset when present, otherwise goes to the network
// and opportunistically stores successful same-origin responses.
func (c *Cache) Fetch(ctx context.Context, url string) (domain.Asset, error) {
	asset, err := c.store.Get(ctx, c.name, url)
	if err == nil {
		return asset, nil
	}
	if !errors.Is(err, domain.ErrContentNotFound) {
		return domain.Asset{}, err
	}

	asset, err = c.fetch(ctx, url)
	if err != nil {
		return domain.Asset{}, err
	}
	if c.sameOrigin(url) {
		if err := c.store.Put(ctx, c.name, asset); err != nil {
			log.Printf("asset cache: store %s: %v", url, err)
		}
	}
	return asset, nil
}

func (c *Cache) fetch(ctx context.Context, url string) (domain.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(url), nil)
	if err != nil {
		return domain.Asset{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Asset{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Asset{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Asset{}, err
	}
	return domain.Asset{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// resolve turns origin-relative URLs into absolute ones for the HTTP client.
func (c *Cache) resolve(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if strings.HasPrefix(url, "/") {
		return c.origin + url
	}
	return c.origin + "/" + url
}

func (c *Cache) sameOrigin(url string) bool {
	if strings.HasPrefix(url, "/") {
		return true
	}
	return c.origin != "" && strings.HasPrefix(url, c.origin)
}
