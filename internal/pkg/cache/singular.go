package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Singular is a single in-process value, refreshed by whoever finds it expired.
type Singular[T any] struct {
	m sync.Mutex

	key string

	c *cache.Cache
}

func (c *Singular[T]) Get() (T, bool) {
	v, ok := c.c.Get(c.key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet returns the cached value, computing and storing it with valueFunc on a
// miss. Concurrent misses run valueFunc once.
func (c *Singular[T]) MutexGetSet(valueFunc func() (T, error), expire time.Duration) (T, error) {
	if v, ok := c.Get(); ok {
		return v, nil
	}

	c.m.Lock()
	defer c.m.Unlock()
	if v, ok := c.Get(); ok {
		return v, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return value, err
	}
	c.Set(value, expire)
	return value, nil
}

func (c *Singular[T]) Delete() error {
	c.c.Flush()
	return nil
}
