package model

// Firestore collection names.
const (
	CollectionItineraries  = "itineraries"
	CollectionDestinations = "destinations"
)

// APIKeyPlaceholder is the build-time token substituted for the real key in
// production bundles. A key equal to this value counts as unconfigured.
const APIKeyPlaceholder = "GOOGLE_API_KEY_PLACEHOLDER"

// PlacesTextSearchBaseURL is the Places text-search endpoint, shared by the
// raw proxy and the normalized places provider.
const PlacesTextSearchBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// OfflineCacheName versions the offline cache. Bumping it invalidates every
// previously cached resource on the next activation.
const OfflineCacheName = "carte-monde-v1"

// OfflineCacheManifest lists the static assets and map-tile templates
// pre-populated at install time. Template URLs (containing "{") cannot be
// fetched literally and are skipped by the worker.
var OfflineCacheManifest = []string{
	"/",
	"/index.html",
	"https://unpkg.com/leaflet@1.9.4/dist/leaflet.css",
	"https://unpkg.com/leaflet@1.9.4/dist/leaflet.js",
	"https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
	"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	"https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
	"https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
}

// OfflineBlockedHosts are URL fragments whose requests must never reach the
// network on a cache miss: search is declared unavailable offline instead.
var OfflineBlockedHosts = []string{
	"maps.googleapis.com",
	"localhost:8000",
	"/api/places-search",
}

// OfflineSearchUnavailableMessage is the body of the synthetic 503 returned
// for blocked search requests. Kept in French, matching the UI language.
const OfflineSearchUnavailableMessage = "Recherche API indisponible hors ligne"

// DefaultItineraryNamePrefix prefixes the date-based name given to a lazily
// created itinerary.
const DefaultItineraryNamePrefix = "Itinéraire du "
