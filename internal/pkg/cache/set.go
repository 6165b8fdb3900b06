package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrNotFound = errors.New("cache: key not found")

	client *redis.Client
)

// Initialize binds every Set to client. Until then sets hold nothing: lookups miss
// and writes are dropped.
func Initialize(c *redis.Client) {
	client = c
}

// clearScript deletes every key matching ARGV[1] in batches so that unpack stays
// below the Lua stack limit.
var clearScript = redis.NewScript(`local keys = redis.call('keys', ARGV[1])
	for i=1,#keys,5000 do
		redis.call('del', unpack(keys, i, math.min(i+4999, #keys)))
	end
return #keys`)

func NewSet[T any](prefix string) *Set[T] {
	return &Set[T]{
		prefix: prefix + ":",
	}
}

// Set is a family of msgpack encoded redis values sharing a key prefix.
type Set[T any] struct {
	// m serializes MutexGetSet so one valueFunc runs per cold key at a time
	m sync.Mutex

	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(ctx context.Context, key string, dest *T) error {
	if client == nil {
		return ErrNotFound
	}
	key = c.key(key)
	resp, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	} else if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")
		return err
	}
	if err := msgpack.Unmarshal(resp, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack from redis")
		return err
	}
	return nil
}

func (c *Set[T]) Set(ctx context.Context, key string, value *T, expire time.Duration) error {
	if client == nil {
		return nil
	}
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to redis")
	}
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err := client.Set(ctx, key, b, expire).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

// MutexGetSet writes the cached value of key to dest. On a miss it computes the value
// with valueFunc, caches it and writes it to dest. The returned bool reports whether
// the value was computed.
func (c *Set[T]) MutexGetSet(ctx context.Context, key string, dest *T, valueFunc func() (*T, error), expire time.Duration) (bool, error) {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	c.m.Lock()
	defer c.m.Unlock()

	// another caller may have filled the key while we waited
	if err := c.Get(ctx, key, dest); err == nil {
		return false, nil
	}

	value, err := valueFunc()
	if err != nil {
		return true, err
	}
	if err := c.Set(ctx, key, value, expire); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("serving uncached value")
	}
	*dest = *value
	return true, nil
}

func (c *Set[T]) Delete(ctx context.Context, key string) error {
	if client == nil {
		return nil
	}
	key = c.key(key)
	if err := client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete value from redis")
		return err
	}
	return nil
}

// DeleteMatching removes every key of the set starting with sub.
func (c *Set[T]) DeleteMatching(ctx context.Context, sub string) (int, error) {
	if client == nil {
		return 0, nil
	}
	n, err := clearScript.Eval(ctx, client, []string{}, c.prefix+sub+"*").Int()
	if err != nil {
		log.Error().Err(err).Str("prefix", c.prefix+sub).Msg("failed to clear cache")
		return 0, err
	}
	return n, nil
}

// Flush removes every key of the set.
func (c *Set[T]) Flush() error {
	_, err := c.DeleteMatching(context.Background(), "")
	return err
}
