package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/redis"
)

// Store persists cart snapshots keyed by business slug. A missing key
// loads as an empty cart, never an error.
type Store interface {
	Load(ctx context.Context, slug string) (*Cart, error)
	Save(ctx context.Context, slug string, cart *Cart) error
	Clear(ctx context.Context, slug string) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(slug string) string
}

// RedisStore keeps one JSON snapshot per slug under pedilo:cart:<slug>.
type RedisStore struct {
	kv  kvStore
	ttl time.Duration
}

// NewRedisStore builds a cart store on top of the shared redis client.
func NewRedisStore(kv *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if kv == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{kv: kv, ttl: ttl}, nil
}

func newRedisStoreWithKV(kv kvStore, ttl time.Duration) *RedisStore {
	return &RedisStore{kv: kv, ttl: ttl}
}

// Load restores the cart snapshot for a slug.
func (s *RedisStore) Load(ctx context.Context, slug string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(slug))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return NewCart(slug), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart snapshot")
	}
	cart.Slug = slug
	return &cart, nil
}

// Save writes the cart snapshot, refreshing its TTL.
func (s *RedisStore) Save(ctx context.Context, slug string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(slug), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart snapshot")
	}
	return nil
}

// Clear drops the snapshot for a slug.
func (s *RedisStore) Clear(ctx context.Context, slug string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(slug)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart snapshot")
	}
	return nil
}

// keyedMutex serializes cart mutations per slug so rapid increment and
// decrement calls never interleave their load-mutate-save cycles. Carts
// for different slugs proceed independently.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*sync.Mutex{}}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &sync.Mutex{}
		k.locks[key] = entry
	}
	k.mu.Unlock()

	entry.Lock()
	return entry.Unlock
}
