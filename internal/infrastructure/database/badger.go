package database

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// BadgerClient wraps the embedded key-value store backing the offline cache
// and the local itinerary fallback.
type BadgerClient struct {
	DB *badger.DB
}

// NewBadgerClient opens the store at path. An empty path opens an
// in-memory database, which tests rely on.
func NewBadgerClient(path string) (*BadgerClient, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
		opts.SyncWrites = true
	}
	opts.Logger = nil // Badger's own logging is too chatty

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if path == "" {
		logrus.Info("✅ Badger store opened in memory")
	} else {
		logrus.Infof("✅ Badger store opened at %s", path)
	}
	return &BadgerClient{DB: db}, nil
}

// Close flushes and closes the store.
func (c *BadgerClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
