package repository

import (
	"context"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// OfflineCacheRepository stores cached resources under a versioned cache
// name. Only one version is retained; PurgeOtherVersions implements the
// activation step that drops every stale version.
type OfflineCacheRepository interface {
	Put(ctx context.Context, cacheName string, resource *model.CachedResource) error
	// Get returns model.ErrCacheMiss when the URL is not cached under the
	// given cache name.
	Get(ctx context.Context, cacheName, url string) (*model.CachedResource, error)
	PurgeOtherVersions(ctx context.Context, keepCacheName string) error
}
