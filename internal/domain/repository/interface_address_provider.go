package repository

import (
	"context"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// AddressProvider is one address-lookup backend (places-style or
// geocode-style). Implementations map their raw reply into AddressResult;
// an empty slice with a nil error means "nothing found" and lets the
// search service fall back to the next provider.
type AddressProvider interface {
	Search(ctx context.Context, query string) ([]model.AddressResult, error)
}
