package model

import "errors"

// Sentinel errors shared across services and repositories. Callers check
// them with errors.Is so "not authenticated" is distinguishable from
// "not found" or a network failure.
var (
	// ErrNotAuthenticated is returned by persistence operations invoked
	// without an active session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a requested document does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrAPIKeyNotConfigured is returned by providers when the API key is
	// absent or still the build-time placeholder. No network call is made.
	ErrAPIKeyNotConfigured = errors.New("API key not configured")

	// ErrCacheMiss is returned by the offline cache when no entry matches
	// the requested URL in the current cache version.
	ErrCacheMiss = errors.New("cache miss")
)
