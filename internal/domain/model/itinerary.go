package model

import "time"

// Itinerary is an ordered collection of destinations owned by one user.
// Destinations live in their own collection keyed by ItineraryID; the slice
// here is a read model populated on demand, ordered by creation time.
type Itinerary struct {
	ID           string        `json:"id"`
	Name         string        `json:"nom"`
	UserID       string        `json:"user_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Destinations []Destination `json:"destinations,omitempty"`
}

// FirestoreItinerary is the document stored in the itineraries collection.
// The legacy field name "nom" is kept so existing documents stay readable.
type FirestoreItinerary struct {
	Nom       string    `firestore:"nom"`
	UserID    string    `firestore:"userId"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// ToFirestoreItinerary converts an Itinerary for persistence.
func (it *Itinerary) ToFirestoreItinerary() *FirestoreItinerary {
	return &FirestoreItinerary{
		Nom:       it.Name,
		UserID:    it.UserID,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

// ToItinerary rebuilds the domain model from a stored document.
func (fi *FirestoreItinerary) ToItinerary(id string) *Itinerary {
	return &Itinerary{
		ID:        id,
		Name:      fi.Nom,
		UserID:    fi.UserID,
		CreatedAt: fi.CreatedAt,
		UpdatedAt: fi.UpdatedAt,
	}
}
