package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[int64], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64], t *testing.T) {
				c.Set(1001, []byte("a"))
				if v, ok := c.Get(1001); !ok || string(v) != "a" {
					t.Errorf("expected value=a, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[int64], t *testing.T) {
				c.Set(1001, []byte("a"))
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get(1001); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64], t *testing.T) {
				c.Set(1, []byte("a"))
				c.Set(2, []byte("b"))
				c.Set(3, []byte("c"))
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key 1 to be evicted")
				}
				if v, ok := c.Get(2); !ok || string(v) != "b" {
					t.Errorf("expected 2=b, got %v", v)
				}
				if v, ok := c.Get(3); !ok || string(v) != "c" {
					t.Errorf("expected 3=c, got %v", v)
				}
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64], t *testing.T) {
				c.Set(1001, []byte("a"))
				c.Delete(1001)
				if _, ok := c.Get(1001); ok {
					t.Errorf("expected key to be deleted")
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[int64], t *testing.T) {
				c.Set(1001, []byte("a"))
				time.Sleep(time.Millisecond * 30)
				c.Set(1001, []byte("b"))
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get(1001); !ok || string(v) != "b" {
					t.Errorf("expected updated value=b, got=%v", v)
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[int64], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.StartJanitor(ctx)

				c.Set(1001, []byte("a"))
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if _, ok := c.Get(1001); ok {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[int64](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
