package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGetInvalidate(t *testing.T) {
	s := New(time.Minute)

	_, ok := s.Get("resources")
	assert.False(t, ok)

	s.Set("resources", []string{"a", "b"})
	v, ok := s.Get("resources")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)

	s.Invalidate("resources")
	_, ok = s.Get("resources")
	assert.False(t, ok)
}

func TestStoreTTLExpiry(t *testing.T) {
	s := New(time.Minute)
	s.SetWithTTL("role:abc", "faculty", 10*time.Millisecond)

	_, ok := s.Get("role:abc")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = s.Get("role:abc")
	assert.False(t, ok)
}
