package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/redis"
)

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) CartKey(slug string) string {
	return "pedilo:cart:" + slug
}

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := newRedisStoreWithKV(kv, time.Hour)
	ctx := context.Background()

	cart := NewCart("la-esquina")
	cart.Lines = []Line{{
		ID:       uuid.New(),
		Product:  ProductSnapshot{ProductID: uuid.New(), Nombre: "Pan", PrecioCentavos: 150, CantidadMinima: 1},
		Cantidad: 2,
	}}

	if err := store.Save(ctx, "la-esquina", cart); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := kv.ttls["pedilo:cart:la-esquina"]; ttl != time.Hour {
		t.Fatalf("expected configured ttl, got %v", ttl)
	}

	loaded, err := store.Load(ctx, "la-esquina")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0].Cantidad != 2 {
		t.Fatalf("unexpected loaded cart %+v", loaded)
	}
	if loaded.Lines[0].Product.Nombre != "Pan" {
		t.Fatalf("expected product snapshot to survive the round trip, got %+v", loaded.Lines[0].Product)
	}
}

func TestRedisStoreLoadMissingKeyReturnsEmptyCart(t *testing.T) {
	store := newRedisStoreWithKV(newFakeKV(), time.Hour)

	cart, err := store.Load(context.Background(), "nueva-tienda")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cart.Slug != "nueva-tienda" || len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart for missing key, got %+v", cart)
	}
}

func TestRedisStoreClear(t *testing.T) {
	kv := newFakeKV()
	store := newRedisStoreWithKV(kv, time.Hour)
	ctx := context.Background()

	if err := store.Save(ctx, "la-esquina", NewCart("la-esquina")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx, "la-esquina"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := kv.data["pedilo:cart:la-esquina"]; ok {
		t.Fatal("expected key removed")
	}
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	locks := newKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("la-esquina")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}
