package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forkcast/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value []byte
		ttl   time.Duration
	}{
		{
			name:  "store and retrieve raw bytes",
			key:   "test-key-1",
			value: []byte("test-value"),
			ttl:   1 * time.Minute,
		},
		{
			name:  "store and retrieve JSON blob",
			key:   "test-key-2",
			value: []byte(`{"foodName":"Milk","caloriesPer100g":61}`),
			ttl:   1 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, tt.ttl); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != string(tt.value) {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "expires-soon", []byte("value"), 1*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err := cache.Get(ctx, "expires-soon")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after expiry error = %v, want ErrCacheMiss", err)
	}

	exists, err := cache.Exists(ctx, "expires-soon")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for expired key, want false")
	}
}

func TestMemoryCache_GetMissing(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "never-set")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)

	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := cache.Get(ctx, "key")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	exists, _ := cache.Exists(ctx, "key")
	if exists {
		t.Error("Exists() = true before Set, want false")
	}

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)

	exists, _ = cache.Exists(ctx, "key")
	if !exists {
		t.Error("Exists() = false after Set, want true")
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "a", []byte("1"), time.Minute)
	_ = cache.Set(ctx, "b", []byte("2"), time.Minute)

	if cache.Size() != 2 {
		t.Errorf("Size() = %d, want 2", cache.Size())
	}

	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", cache.Size())
	}
}
