package service

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// ItineraryStore is the in-memory destination list used when no
// authenticated session exists. Insertion order is the trip order.
type ItineraryStore struct {
	mu     sync.Mutex
	points []model.Destination
}

// NewItineraryStore creates an empty store.
func NewItineraryStore() *ItineraryStore {
	return &ItineraryStore{points: []model.Destination{}}
}

// AddDestination converts a selected address result into a destination and
// appends it. Duration fields arrive as raw form strings and are coerced to
// non-negative integers, falling back to zero on anything unparseable.
func (s *ItineraryStore) AddDestination(res *model.AddressResult, days, hours, minutes string) model.Destination {
	point := model.Destination{
		Name:    res.DisplayName,
		Address: model.AddressFromResult(res),
		Duration: model.Duration{
			Days:    parseNonNegative(days),
			Hours:   parseNonNegative(hours),
			Minutes: parseNonNegative(minutes),
		},
		CreatedAt: time.Now(),
	}
	if res.HasLocation() {
		point.Location = model.LatLng{Lat: *res.Latitude, Lng: *res.Longitude}
	}

	s.mu.Lock()
	s.points = append(s.points, point)
	total := len(s.points)
	s.mu.Unlock()

	logrus.Infof("✅ Destination ajoutée: %s (%d au total)", point.Name, total)
	return point
}

// Points returns a copy of the destination list in trip order.
func (s *ItineraryStore) Points() []model.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Destination, len(s.points))
	copy(out, s.points)
	return out
}

// RemovePoint removes the destination at index. Out-of-range indexes are a
// no-op returning false.
func (s *ItineraryStore) RemovePoint(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.points) {
		return false
	}
	s.points = append(s.points[:index], s.points[index+1:]...)
	return true
}

// Clear drops every destination.
func (s *ItineraryStore) Clear() {
	s.mu.Lock()
	s.points = []model.Destination{}
	s.mu.Unlock()
}

// TotalDuration sums every destination's duration in minutes and re-derives
// days/hours/minutes. The result is independent of destination order.
func (s *ItineraryStore) TotalDuration() model.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	totalMinutes := 0
	for _, p := range s.points {
		totalMinutes += p.Duration.TotalMinutes()
	}
	return model.DurationFromMinutes(totalMinutes)
}

// TotalDistanceMeters is the haversine length of the trip polyline through
// the destinations in insertion order. Fewer than two points yield zero.
func (s *ItineraryStore) TotalDistanceMeters() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for i := 1; i < len(s.points); i++ {
		prev := s.points[i-1].Location
		cur := s.points[i].Location
		total += geo.DistanceHaversine(
			orb.Point{prev.Lng, prev.Lat},
			orb.Point{cur.Lng, cur.Lat},
		)
	}
	return total
}

// ExportJSON serializes the full destination list.
func (s *ItineraryStore) ExportJSON() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.points, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportJSON replaces the destination list with the parsed payload. The
// payload must be a JSON array; anything else leaves the store untouched
// and returns false.
func (s *ItineraryStore) ImportJSON(data string) bool {
	var imported []model.Destination
	if err := json.Unmarshal([]byte(data), &imported); err != nil {
		logrus.Warnf("⚠️ Import d'itinéraire invalide: %v", err)
		return false
	}
	if imported == nil {
		// "null" parses fine but is not a sequence.
		return false
	}
	s.mu.Lock()
	s.points = imported
	s.mu.Unlock()
	logrus.Infof("✅ Itinéraire importé (%d destinations)", len(imported))
	return true
}

// Replace swaps in a persisted destination list, used when reloading the
// local fallback at startup.
func (s *ItineraryStore) Replace(points []model.Destination) {
	if points == nil {
		points = []model.Destination{}
	}
	s.mu.Lock()
	s.points = points
	s.mu.Unlock()
}

// parseNonNegative coerces a form value to a non-negative integer, zero on
// parse failure or negative input.
func parseNonNegative(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
