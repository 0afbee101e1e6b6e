package model

import "time"

// Duration is the planned visit time for one destination.
// Fields are non-negative; Hours and Minutes stay within the usual UI
// ranges on aggregation but are not enforced on input.
type Duration struct {
	Days    int `json:"days" firestore:"days"`
	Hours   int `json:"hours" firestore:"hours"`
	Minutes int `json:"minutes" firestore:"minutes"`
}

// TotalMinutes flattens the duration to minutes (1 day = 1440 minutes,
// no calendar-aware rounding).
func (d Duration) TotalMinutes() int {
	return d.Days*24*60 + d.Hours*60 + d.Minutes
}

// DurationFromMinutes re-derives days/hours/minutes from a minute total.
func DurationFromMinutes(totalMinutes int) Duration {
	return Duration{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes % (24 * 60)) / 60,
		Minutes: totalMinutes % 60,
	}
}

// Destination is a single stop in an itinerary. The parent ItineraryID is
// set at creation and never reassigned.
type Destination struct {
	ID          string    `json:"id"`
	ItineraryID string    `json:"itinerary_id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Name        string    `json:"name"`
	Address     Address   `json:"address"`
	Location    LatLng    `json:"location"`
	Duration    Duration  `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

// FirestoreDestination is the document stored in the destinations
// collection. Destinations are inserted one document at a time so two
// sessions can append concurrently without overwriting each other.
type FirestoreDestination struct {
	ItineraryID string    `firestore:"itineraryId"`
	UserID      string    `firestore:"userId"`
	Name        string    `firestore:"name"`
	Address     Address   `firestore:"address"`
	Location    LatLng    `firestore:"location"`
	Duration    Duration  `firestore:"duration"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// ToFirestoreDestination converts a Destination for persistence.
func (d *Destination) ToFirestoreDestination() *FirestoreDestination {
	return &FirestoreDestination{
		ItineraryID: d.ItineraryID,
		UserID:      d.UserID,
		Name:        d.Name,
		Address:     d.Address,
		Location:    d.Location,
		Duration:    d.Duration,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDestination rebuilds the domain model from a stored document.
func (fd *FirestoreDestination) ToDestination(id string) *Destination {
	return &Destination{
		ID:          id,
		ItineraryID: fd.ItineraryID,
		UserID:      fd.UserID,
		Name:        fd.Name,
		Address:     fd.Address,
		Location:    fd.Location,
		Duration:    fd.Duration,
		CreatedAt:   fd.CreatedAt,
	}
}
