package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// cacheKeyPrefix namespaces offline cache entries inside the shared Badger
// store. Full key layout: cache|<cacheName>|<url>.
const cacheKeyPrefix = "cache|"

// BadgerOfflineCacheRepository keeps cached resources in Badger, one entry
// per (cache version, URL) pair.
type BadgerOfflineCacheRepository struct {
	db *badger.DB
}

// NewBadgerOfflineCacheRepository creates a new repository instance.
func NewBadgerOfflineCacheRepository(db *badger.DB) *BadgerOfflineCacheRepository {
	return &BadgerOfflineCacheRepository{db: db}
}

func cacheKey(cacheName, url string) []byte {
	return []byte(cacheKeyPrefix + cacheName + "|" + url)
}

// Put stores a resource under the given cache version.
func (r *BadgerOfflineCacheRepository) Put(_ context.Context, cacheName string, resource *model.CachedResource) error {
	data, err := json.Marshal(resource)
	if err != nil {
		return fmt.Errorf("failed to encode cached resource: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(cacheName, resource.URL), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store cached resource: %w", err)
	}
	return nil
}

// Get returns the cached resource for a URL, model.ErrCacheMiss when the
// current cache version has no entry for it.
func (r *BadgerOfflineCacheRepository) Get(_ context.Context, cacheName, url string) (*model.CachedResource, error) {
	var resource model.CachedResource
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(cacheName, url))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &resource)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, model.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached resource: %w", err)
	}
	return &resource, nil
}

// PurgeOtherVersions deletes every cache entry whose version segment
// differs from keepCacheName: the single-version retention rule applied on
// activation.
func (r *BadgerOfflineCacheRepository) PurgeOtherVersions(_ context.Context, keepCacheName string) error {
	keepPrefix := []byte(cacheKeyPrefix + keepCacheName + "|")

	var stale [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(cacheKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			if !bytes.HasPrefix(key, keepPrefix) {
				stale = append(stale, key)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan cache versions: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge stale cache versions: %w", err)
	}
	logrus.Infof("🧹 Purged %d stale cache entries (keeping %s)", len(stale), keepCacheName)
	return nil
}
