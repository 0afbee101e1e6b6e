package model

import "time"

// CachedResource is one entry of the offline cache: the response the worker
// hands back for a URL, either replayed from the cache or synthesized.
type CachedResource struct {
	URL         string    `json:"url"`
	Status      int       `json:"status"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	CachedAt    time.Time `json:"cached_at"`
}

// NewOfflineSearchUnavailable builds the synthetic 503 handed back when a
// search request misses the cache while the network is off limits.
func NewOfflineSearchUnavailable(url string) *CachedResource {
	return &CachedResource{
		URL:         url,
		Status:      503,
		ContentType: "application/json",
		Body:        []byte(`{"error":"` + OfflineSearchUnavailableMessage + `"}`),
	}
}
