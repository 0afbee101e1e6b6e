package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/repository"
)

// SyncService synchronizes itineraries with the cloud document store,
// scoped to the authenticated session. The session moves Anonymous →
// Authenticated on SignIn/SignUp and back on SignOut; every persistence
// operation besides those requires Authenticated and fails with
// model.ErrNotAuthenticated otherwise, before any store access.
type SyncService interface {
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignUp(ctx context.Context, email, password string) (*model.Session, error)
	SignOut()
	CurrentSession() *model.Session
	IsAuthenticated() bool

	// EnsureItinerary returns the user's first itinerary, creating one with
	// a date-based default name on first use.
	EnsureItinerary(ctx context.Context) (*model.Itinerary, error)
	AddDestination(ctx context.Context, itineraryID string, destination *model.Destination) (*model.Destination, error)
	GetItineraries(ctx context.Context) ([]model.Itinerary, error)
	GetDestinations(ctx context.Context, itineraryID string) ([]model.Destination, error)
}

// syncServiceImpl is the SyncService implementation.
type syncServiceImpl struct {
	auth         repository.AuthProvider
	itineraries  repository.ItinerariesRepository
	destinations repository.DestinationsRepository

	mu      sync.RWMutex
	session *model.Session
}

// NewSyncService creates a SyncService in the Anonymous state.
func NewSyncService(
	auth repository.AuthProvider,
	itineraries repository.ItinerariesRepository,
	destinations repository.DestinationsRepository,
) SyncService {
	return &syncServiceImpl{
		auth:         auth,
		itineraries:  itineraries,
		destinations: destinations,
	}
}

// SignIn authenticates with email/password and transitions to
// Authenticated on success.
func (s *syncServiceImpl) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}
	s.setSession(session)
	logrus.Infof("✅ Utilisateur connecté: %s", session.Email)
	return session, nil
}

// SignUp creates the account and transitions to Authenticated on success.
func (s *syncServiceImpl) SignUp(ctx context.Context, email, password string) (*model.Session, error) {
	session, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign-up failed: %w", err)
	}
	s.setSession(session)
	logrus.Infof("✅ Compte créé: %s", session.Email)
	return session, nil
}

// SignOut clears the session. No network call is involved.
func (s *syncServiceImpl) SignOut() {
	s.setSession(nil)
	logrus.Info("Déconnecté")
}

// CurrentSession returns the active session, nil when Anonymous.
func (s *syncServiceImpl) CurrentSession() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsAuthenticated reports whether a session is active.
func (s *syncServiceImpl) IsAuthenticated() bool {
	return s.CurrentSession() != nil
}

// EnsureItinerary returns the user's oldest itinerary or lazily creates one
// named after today's date. Two devices racing through the create path can
// still end up with two documents; resolving that needs a transactional
// read-check-write and is deliberately left open.
func (s *syncServiceImpl) EnsureItinerary(ctx context.Context) (*model.Itinerary, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	existing, err := s.itineraries.FindFirstByUser(ctx, session.UID)
	if err == nil {
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to look up itinerary: %w", err)
	}

	now := time.Now()
	itinerary := &model.Itinerary{
		ID:        uuid.New().String(),
		Name:      model.DefaultItineraryNamePrefix + now.Format("02/01/2006"),
		UserID:    session.UID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.itineraries.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("failed to create default itinerary: %w", err)
	}
	return itinerary, nil
}

// AddDestination appends a destination to the itinerary as one atomic
// document insert, then bumps the itinerary's updatedAt.
func (s *syncServiceImpl) AddDestination(ctx context.Context, itineraryID string, destination *model.Destination) (*model.Destination, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	// The parent must exist and belong to the signed-in user; the parent
	// relation is fixed at creation.
	itinerary, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if itinerary.UserID != session.UID {
		return nil, fmt.Errorf("itinerary %s: %w", itineraryID, model.ErrNotFound)
	}

	now := time.Now()
	destination.ID = uuid.New().String()
	destination.ItineraryID = itineraryID
	destination.UserID = session.UID
	destination.CreatedAt = now

	if err := s.destinations.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("failed to add destination: %w", err)
	}
	if err := s.itineraries.Touch(ctx, itineraryID, now); err != nil {
		// The destination is stored; a failed timestamp bump only skews
		// list ordering.
		logrus.Warnf("⚠️ Failed to bump itinerary %s: %v", itineraryID, err)
	}
	return destination, nil
}

// GetItineraries returns the user's itineraries, most recently updated
// first.
func (s *syncServiceImpl) GetItineraries(ctx context.Context) ([]model.Itinerary, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	return s.itineraries.ListByUser(ctx, session.UID)
}

// GetDestinations returns an itinerary's destinations in trip order.
func (s *syncServiceImpl) GetDestinations(ctx context.Context, itineraryID string) ([]model.Destination, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	return s.destinations.ListByItinerary(ctx, itineraryID, session.UID)
}

func (s *syncServiceImpl) setSession(session *model.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *syncServiceImpl) requireSession() (*model.Session, error) {
	session := s.CurrentSession()
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}
	return session, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
