package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[K comparable] struct {
	key        K
	value      []byte
	expiration time.Time
}

// LRUCache is a fixed-capacity byte cache with per-entry TTL. The order
// read path keeps marshaled aggregates here keyed by order id.
type LRUCache[K comparable] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[K]*list.Element
	ttl      time.Duration
}

func NewLRUCache[K comparable](capacity int, ttl time.Duration) *LRUCache[K] {
	return &LRUCache[K]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[K]*list.Element),
		ttl:      ttl,
	}
}

func (c *LRUCache[K]) Get(key K) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[K])
		if time.Now().After(ent.expiration) {
			c.removeElement(ele)
			return nil, false
		}
		c.ll.MoveToFront(ele)
		return ent.value, true
	}
	return nil, false
}

func (c *LRUCache[K]) Set(key K, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[K])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		return
	}

	ent := &entry[K]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

// Delete drops the entry for key. Mutation paths call this so a stale
// aggregate is never served after a transactional update.
func (c *LRUCache[K]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K]) removeOldest() {
	if ele := c.ll.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[K])
	delete(c.cache, ent.key)
}

func (c *LRUCache[K]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache[K]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[K]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[K])
		if time.Now().After(ent.expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
