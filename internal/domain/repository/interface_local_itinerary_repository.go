package repository

import (
	"context"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// LocalItineraryRepository is the key-value fallback used when no
// authenticated session exists: the whole destination list is serialized
// under a single fixed key.
type LocalItineraryRepository interface {
	Save(ctx context.Context, destinations []model.Destination) error
	// Load returns an empty slice when nothing has been saved yet.
	Load(ctx context.Context) ([]model.Destination, error)
}
