package config

import (
	"fmt"
	"os"
)

// Config collects every environment setting the server needs.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// GoogleAPIKey unlocks the Places/Geocoding APIs.
	GoogleAPIKey string
	// FirebaseAPIKey is the web API key used by the Identity Toolkit
	// endpoints for email/password authentication.
	FirebaseAPIKey string
	// FirestoreProjectID names the GCP project holding the document store.
	FirestoreProjectID string
	// OfflineCachePath is the Badger directory; empty means in-memory.
	OfflineCachePath string
}

// Load reads the configuration from environment variables. Only the
// Firestore project is mandatory; missing API keys degrade the related
// features instead of preventing startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GoogleAPIKey:       os.Getenv("GOOGLE_API_KEY"),
		FirebaseAPIKey:     os.Getenv("FIREBASE_API_KEY"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		OfflineCachePath:   os.Getenv("OFFLINE_CACHE_PATH"),
	}

	if cfg.FirestoreProjectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
