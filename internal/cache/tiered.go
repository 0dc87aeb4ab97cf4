package cache

// Tiered layers a fast cache over a slower persistent one. Reads fill
// the fast tier; writes go to both.
type Tiered struct {
	fast Cache
	slow Cache
}

// NewTiered combines a fast and a slow cache.
func NewTiered(fast, slow Cache) *Tiered {
	return &Tiered{fast: fast, slow: slow}
}

// Get returns the cached body for a URL, promoting slow-tier hits.
func (t *Tiered) Get(url string) ([]byte, bool) {
	if body, ok := t.fast.Get(url); ok {
		return body, true
	}
	if body, ok := t.slow.Get(url); ok {
		t.fast.Set(url, body)
		return body, true
	}
	return nil, false
}

// Set stores a body in both tiers.
func (t *Tiered) Set(url string, body []byte) {
	t.fast.Set(url, body)
	t.slow.Set(url, body)
}
