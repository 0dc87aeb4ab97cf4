// Package cache stores raw JSON responses keyed by request URL.
//
// The archive's metadata blobs are immutable for a given URL within a
// session, so the client caches aggressively: an in-memory cache always
// sits in front, with an optional SQLite-backed cache persisting blobs
// across runs.
package cache

// Cache is a read-through store of response bodies keyed by URL.
// Implementations treat storage failures as misses; callers always have
// the network as the source of truth.
type Cache interface {
	// Get returns the cached body for url, if present and fresh.
	Get(url string) ([]byte, bool)

	// Set stores the body for url, best effort.
	Set(url string, body []byte)
}
