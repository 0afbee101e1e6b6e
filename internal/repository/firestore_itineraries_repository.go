package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// FirestoreItinerariesRepository stores itineraries in the itineraries
// collection, one document per itinerary.
type FirestoreItinerariesRepository struct {
	client *firestore.Client
}

// NewFirestoreItinerariesRepository creates a new repository instance.
func NewFirestoreItinerariesRepository(client *firestore.Client) *FirestoreItinerariesRepository {
	return &FirestoreItinerariesRepository{client: client}
}

// Create stores a new itinerary document under its pre-generated ID.
func (r *FirestoreItinerariesRepository) Create(ctx context.Context, itinerary *model.Itinerary) error {
	doc := r.client.Collection(model.CollectionItineraries).Doc(itinerary.ID)
	if _, err := doc.Create(ctx, itinerary.ToFirestoreItinerary()); err != nil {
		logrus.Errorf("❌ Failed to create itinerary %s: %v", itinerary.ID, err)
		return fmt.Errorf("failed to create itinerary: %w", err)
	}
	logrus.Infof("✅ Itinerary created: %s (%s)", itinerary.ID, itinerary.Name)
	return nil
}

// GetByID returns one itinerary, model.ErrNotFound when the document does
// not exist.
func (r *FirestoreItinerariesRepository) GetByID(ctx context.Context, id string) (*model.Itinerary, error) {
	doc, err := r.client.Collection(model.CollectionItineraries).Doc(id).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("itinerary %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}

	var data model.FirestoreItinerary
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary document: %w", err)
	}
	return data.ToItinerary(doc.Ref.ID), nil
}

// FindFirstByUser returns the user's oldest itinerary by creation time.
// When two documents exist after a create race, every device converges on
// the same (oldest) one.
func (r *FirestoreItinerariesRepository) FindFirstByUser(ctx context.Context, userID string) (*model.Itinerary, error) {
	iter := r.client.Collection(model.CollectionItineraries).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Asc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("no itinerary for user %s: %w", userID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}

	var data model.FirestoreItinerary
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary document: %w", err)
	}
	return data.ToItinerary(doc.Ref.ID), nil
}

// ListByUser returns the user's itineraries, most recently updated first.
func (r *FirestoreItinerariesRepository) ListByUser(ctx context.Context, userID string) ([]model.Itinerary, error) {
	iter := r.client.Collection(model.CollectionItineraries).
		Where("userId", "==", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	itineraries := []model.Itinerary{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list itineraries: %w", err)
		}
		var data model.FirestoreItinerary
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("failed to decode itinerary document: %w", err)
		}
		itineraries = append(itineraries, *data.ToItinerary(doc.Ref.ID))
	}
	return itineraries, nil
}

// Touch bumps updatedAt after a destination insert.
func (r *FirestoreItinerariesRepository) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	doc := r.client.Collection(model.CollectionItineraries).Doc(id)
	_, err := doc.Update(ctx, []firestore.Update{{Path: "updatedAt", Value: updatedAt}})
	if err != nil {
		return fmt.Errorf("failed to touch itinerary %s: %w", id, err)
	}
	return nil
}
