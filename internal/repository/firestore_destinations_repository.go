package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// FirestoreDestinationsRepository stores each destination as its own
// document in the destinations collection, keyed by a generated ID. A
// destination append is therefore a single atomic insert: two sessions
// adding at the same time cannot overwrite each other, unlike the embedded
// array model this replaces.
type FirestoreDestinationsRepository struct {
	client *firestore.Client
}

// NewFirestoreDestinationsRepository creates a new repository instance.
func NewFirestoreDestinationsRepository(client *firestore.Client) *FirestoreDestinationsRepository {
	return &FirestoreDestinationsRepository{client: client}
}

// Create inserts the destination document.
func (r *FirestoreDestinationsRepository) Create(ctx context.Context, destination *model.Destination) error {
	doc := r.client.Collection(model.CollectionDestinations).Doc(destination.ID)
	if _, err := doc.Create(ctx, destination.ToFirestoreDestination()); err != nil {
		logrus.Errorf("❌ Failed to save destination %s: %v", destination.ID, err)
		return fmt.Errorf("failed to save destination: %w", err)
	}
	logrus.Infof("✅ Destination saved: %s (%s)", destination.ID, destination.Name)
	return nil
}

// ListByItinerary returns the itinerary's destinations in trip order,
// scoped to the owning user.
func (r *FirestoreDestinationsRepository) ListByItinerary(ctx context.Context, itineraryID, userID string) ([]model.Destination, error) {
	iter := r.client.Collection(model.CollectionDestinations).
		Where("itineraryId", "==", itineraryID).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	destinations := []model.Destination{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list destinations: %w", err)
		}
		var data model.FirestoreDestination
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("failed to decode destination document: %w", err)
		}
		destinations = append(destinations, *data.ToDestination(doc.Ref.ID))
	}
	return destinations, nil
}
