package repository

import (
	"context"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// DestinationsRepository persists destinations as individual documents.
// Create must be a single atomic insert so concurrent appends from two
// sessions never overwrite each other.
type DestinationsRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	// ListByItinerary returns the itinerary's destinations in trip order
	// (creation time ascending), scoped to the owning user.
	ListByItinerary(ctx context.Context, itineraryID, userID string) ([]model.Destination, error)
}
