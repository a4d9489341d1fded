package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memo is a caller-owned memoization table for repeated lookups within one
// run (parent-name resolution, date normalization, year parsing). Entries
// never expire; the caller discards the whole table when its inputs change.
type Memo struct {
	cache *gocache.Cache
}

// NewMemo creates an empty memoization table.
func NewMemo() *Memo {
	return &Memo{
		cache: gocache.New(gocache.NoExpiration, time.Hour),
	}
}

// GetString retrieves a memoized string value.
func (m *Memo) GetString(key string) (string, bool) {
	if val, found := m.cache.Get(key); found {
		s, ok := val.(string)
		return s, ok
	}
	return "", false
}

// SetString stores a string value.
func (m *Memo) SetString(key, value string) {
	m.cache.Set(key, value, gocache.NoExpiration)
}

// GetInt retrieves a memoized int value.
func (m *Memo) GetInt(key string) (int, bool) {
	if val, found := m.cache.Get(key); found {
		i, ok := val.(int)
		return i, ok
	}
	return 0, false
}

// SetInt stores an int value.
func (m *Memo) SetInt(key string, value int) {
	m.cache.Set(key, value, gocache.NoExpiration)
}

// Clear removes all entries.
func (m *Memo) Clear() {
	m.cache.Flush()
}
