package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a small TTL cache used for list query results and resolved roles.
// Mutating operations invalidate the corresponding list key so the next read
// refetches authoritative state; there is no optimistic local update.
type Store struct {
	c *gocache.Cache
}

// New creates a Store whose entries expire after defaultTTL.
func New(defaultTTL time.Duration) *Store {
	return &Store{
		c: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Get returns the cached value for key, if present and not expired.
func (s *Store) Get(key string) (interface{}, bool) {
	return s.c.Get(key)
}

// Set stores a value under key with the default TTL.
func (s *Store) Set(key string, value interface{}) {
	s.c.Set(key, value, gocache.DefaultExpiration)
}

// SetWithTTL stores a value under key with an explicit TTL.
func (s *Store) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

// Invalidate drops the cached value for key.
func (s *Store) Invalidate(key string) {
	s.c.Delete(key)
}
