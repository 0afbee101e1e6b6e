package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// localItineraryKey is the single fixed key the local fallback itinerary
// lives under.
const localItineraryKey = "local|itinerary"

// BadgerLocalItineraryRepository persists the local (unauthenticated)
// itinerary as one serialized destination list.
type BadgerLocalItineraryRepository struct {
	db *badger.DB
}

// NewBadgerLocalItineraryRepository creates a new repository instance.
func NewBadgerLocalItineraryRepository(db *badger.DB) *BadgerLocalItineraryRepository {
	return &BadgerLocalItineraryRepository{db: db}
}

// Save overwrites the stored destination list.
func (r *BadgerLocalItineraryRepository) Save(_ context.Context, destinations []model.Destination) error {
	data, err := json.Marshal(destinations)
	if err != nil {
		return fmt.Errorf("failed to encode local itinerary: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(localItineraryKey), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store local itinerary: %w", err)
	}
	return nil
}

// Load returns the stored list, or an empty slice when nothing was saved
// yet.
func (r *BadgerLocalItineraryRepository) Load(_ context.Context) ([]model.Destination, error) {
	destinations := []model.Destination{}
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(localItineraryKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &destinations)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []model.Destination{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load local itinerary: %w", err)
	}
	return destinations, nil
}
