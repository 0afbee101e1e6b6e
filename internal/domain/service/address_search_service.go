package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/repository"
)

// minQueryLength is the trimmed length below which no provider is called.
const minQueryLength = 3

// AddressSearchService resolves a free-text query into normalized address
// results. It never returns an error: provider failures are converted into
// a single source:error marker so UI flows cannot crash on an outage.
type AddressSearchService interface {
	Search(ctx context.Context, query string) []model.AddressResult
}

// addressSearchServiceImpl chains a places-style provider with a
// geocode-style fallback, strictly sequential to limit quota usage.
type addressSearchServiceImpl struct {
	places  repository.AddressProvider
	geocode repository.AddressProvider
}

// NewAddressSearchService creates the canonical search client. The places
// provider is always tried first; the geocode provider only runs when
// places yielded nothing.
func NewAddressSearchService(places, geocode repository.AddressProvider) AddressSearchService {
	return &addressSearchServiceImpl{
		places:  places,
		geocode: geocode,
	}
}

// Search implements the sequential fallback. Queries shorter than three
// characters after trimming return an empty slice without any network call.
func (s *addressSearchServiceImpl) Search(ctx context.Context, query string) []model.AddressResult {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minQueryLength {
		return []model.AddressResult{}
	}

	results, err := s.places.Search(ctx, trimmed)
	if err != nil {
		// A places failure is not fatal: the geocode fallback still runs,
		// exactly as if places had found nothing.
		if errors.Is(err, model.ErrAPIKeyNotConfigured) {
			logrus.Warn("⚠️ Places API unavailable: API key not configured")
		} else {
			logrus.Warnf("⚠️ Places API error: %v", err)
		}
		results = nil
	}
	if len(results) > 0 {
		return results
	}

	fallback, err := s.geocode.Search(ctx, trimmed)
	if err != nil {
		if errors.Is(err, model.ErrAPIKeyNotConfigured) {
			logrus.Warn("⚠️ Geocoding API unavailable: API key not configured")
			return []model.AddressResult{model.NewErrorResult("Recherche API non configurée")}
		}
		logrus.Errorf("❌ Geocoding API error: %v", err)
		return []model.AddressResult{model.NewErrorResult("Erreur de connexion à l'API")}
	}
	if fallback == nil {
		fallback = []model.AddressResult{}
	}
	return fallback
}
