package repository

import (
	"context"
	"time"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// ItinerariesRepository persists itineraries scoped to a user.
type ItinerariesRepository interface {
	// Create stores a new itinerary document.
	Create(ctx context.Context, itinerary *model.Itinerary) error
	// GetByID returns one itinerary, model.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*model.Itinerary, error)
	// FindFirstByUser returns the user's oldest itinerary by creation time,
	// model.ErrNotFound when the user has none yet.
	FindFirstByUser(ctx context.Context, userID string) (*model.Itinerary, error)
	// ListByUser returns the user's itineraries, most recently updated first.
	ListByUser(ctx context.Context, userID string) ([]model.Itinerary, error)
	// Touch bumps the itinerary's updatedAt timestamp.
	Touch(ctx context.Context, id string, updatedAt time.Time) error
}
