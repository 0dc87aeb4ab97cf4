package cache

import (
	"sync"
)

// Memory is a process-lifetime cache of response bodies.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]byte),
	}
}

// Get implements Cache.
func (m *Memory) Get(url string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.entries[url]
	return body, ok
}

// Set implements Cache.
func (m *Memory) Set(url string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[url] = body
}

// Has reports whether a fresh entry exists for url.
func (m *Memory) Has(url string) bool {
	_, ok := m.Get(url)
	return ok
}

// Clear drops every cached entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]byte)
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
