package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/repository"
)

// maxCachedBodyBytes caps what Install will store for a single resource.
const maxCachedBodyBytes = 8 << 20

// OfflineWorker implements the offline caching policy: install pre-populates
// a versioned cache from a fixed manifest, Fetch serves cache-first, and
// Activate drops every other cache version.
type OfflineWorker interface {
	Install(ctx context.Context) error
	Activate(ctx context.Context) error
	// Fetch resolves a URL cache-first. A miss on a search-provider URL
	// yields a synthetic 503 instead of a network call; other misses pass
	// through to the network without being written back.
	Fetch(ctx context.Context, url string) (*model.CachedResource, error)
}

// offlineWorkerImpl is the OfflineWorker implementation.
type offlineWorkerImpl struct {
	cache        repository.OfflineCacheRepository
	httpClient   *http.Client
	cacheName    string
	manifest     []string
	blockedHosts []string
}

// NewOfflineWorker creates a worker over the given cache repository. Nil
// httpClient, empty manifest or empty blocked list fall back to the
// defaults from the model package.
func NewOfflineWorker(cache repository.OfflineCacheRepository, httpClient *http.Client, manifest, blockedHosts []string) OfflineWorker {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if manifest == nil {
		manifest = model.OfflineCacheManifest
	}
	if blockedHosts == nil {
		blockedHosts = model.OfflineBlockedHosts
	}
	return &offlineWorkerImpl{
		cache:        cache,
		httpClient:   httpClient,
		cacheName:    model.OfflineCacheName,
		manifest:     manifest,
		blockedHosts: blockedHosts,
	}
}

// Install pre-populates the current cache version from the manifest.
// Tile-template URLs cannot be fetched literally and are skipped; a single
// failed asset is logged and does not abort the install.
func (w *offlineWorkerImpl) Install(ctx context.Context) error {
	cached := 0
	for _, rawURL := range w.manifest {
		if strings.Contains(rawURL, "{") {
			logrus.Debugf("Skipping tile template during install: %s", rawURL)
			continue
		}
		resource, err := w.fetchFromNetwork(ctx, rawURL)
		if err != nil {
			logrus.Warnf("⚠️ Failed to pre-cache %s: %v", rawURL, err)
			continue
		}
		if err := w.cache.Put(ctx, w.cacheName, resource); err != nil {
			return fmt.Errorf("failed to store pre-cached resource: %w", err)
		}
		cached++
	}
	logrus.Infof("✅ Offline cache installed: %d resources (%s)", cached, w.cacheName)
	return nil
}

// Activate enforces single-version retention: every entry cached under a
// different cache name is deleted.
func (w *offlineWorkerImpl) Activate(ctx context.Context) error {
	return w.cache.PurgeOtherVersions(ctx, w.cacheName)
}

// Fetch is the steady-state interception path.
func (w *offlineWorkerImpl) Fetch(ctx context.Context, url string) (*model.CachedResource, error) {
	resource, err := w.cache.Get(ctx, w.cacheName, url)
	if err == nil {
		// Cache hit: returned unconditionally, no revalidation.
		return resource, nil
	}
	if !errors.Is(err, model.ErrCacheMiss) {
		return nil, err
	}

	if w.isBlocked(url) {
		logrus.Warnf("⚠️ Search request blocked on cache miss: %s", url)
		return model.NewOfflineSearchUnavailable(url), nil
	}

	// Plain pass-through; misses are not written back to the cache.
	return w.fetchFromNetwork(ctx, url)
}

func (w *offlineWorkerImpl) isBlocked(url string) bool {
	for _, host := range w.blockedHosts {
		if strings.Contains(url, host) {
			return true
		}
	}
	return false
}

func (w *offlineWorkerImpl) fetchFromNetwork(ctx context.Context, rawURL string) (*model.CachedResource, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network fetch failed for %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCachedBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", rawURL, err)
	}

	return &model.CachedResource{
		URL:         rawURL,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		CachedAt:    time.Now(),
	}, nil
}
