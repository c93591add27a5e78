package cache

import (
	"container/list"
	"context"
	"encoding/json"
	"sync"
	"time"
)

const defaultEntryTTL = 24 * time.Hour

// MemoryOption configures Memory cache.
type MemoryOption func(*MemoryConfig)

// MemoryConfig holds memory cache configuration.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// WithMemoryMaxSize sets max cache size.
func WithMemoryMaxSize(size int) MemoryOption {
	return func(c *MemoryConfig) { c.MaxSize = size }
}

// WithMemoryCleanup sets cleanup interval.
func WithMemoryCleanup(interval time.Duration) MemoryOption {
	return func(c *MemoryConfig) { c.CleanupInterval = interval }
}

type memoryEntry struct {
	key      string
	data     []byte
	expireAt time.Time
}

// MemoryCache implements Service using in-process storage. Entries are
// kept on a recency list so the oldest untouched key is evicted first
// once the cache is full.
type MemoryCache struct {
	mu      sync.Mutex
	index   map[string]*list.Element
	order   *list.List // front = most recently used
	maxSize int

	cleanup *time.Ticker
	done    chan struct{}
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	cfg := &MemoryConfig{
		MaxSize:         1000,
		CleanupInterval: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mc := &MemoryCache{
		index:   make(map[string]*list.Element),
		order:   list.New(),
		maxSize: cfg.MaxSize,
		cleanup: time.NewTicker(cfg.CleanupInterval),
		done:    make(chan struct{}),
	}

	go mc.sweepLoop()
	return mc
}

func (mc *MemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if expiration <= 0 {
		expiration = defaultEntryTTL
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.index[key]; ok {
		ent := el.Value.(*memoryEntry)
		ent.data = data
		ent.expireAt = time.Now().Add(expiration)
		mc.order.MoveToFront(el)
		return nil
	}

	if mc.order.Len() >= mc.maxSize {
		mc.evictOldest()
	}

	mc.index[key] = mc.order.PushFront(&memoryEntry{
		key:      key,
		data:     data,
		expireAt: time.Now().Add(expiration),
	})
	return nil
}

func (mc *MemoryCache) Get(_ context.Context, key string, dest interface{}) error {
	mc.mu.Lock()
	el, ok := mc.index[key]
	if !ok {
		mc.mu.Unlock()
		return ErrCacheMiss
	}

	ent := el.Value.(*memoryEntry)
	if time.Now().After(ent.expireAt) {
		mc.removeElement(el)
		mc.mu.Unlock()
		return ErrCacheMiss
	}

	mc.order.MoveToFront(el)
	data := ent.data
	mc.mu.Unlock()

	return json.Unmarshal(data, dest)
}

func (mc *MemoryCache) Delete(_ context.Context, keys ...string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, key := range keys {
		if el, ok := mc.index[key]; ok {
			mc.removeElement(el)
		}
	}
	return nil
}

func (mc *MemoryCache) Exists(_ context.Context, keys ...string) (bool, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := time.Now()
	for _, key := range keys {
		if el, ok := mc.index[key]; ok && now.Before(el.Value.(*memoryEntry).expireAt) {
			return true, nil
		}
	}
	return false, nil
}

// Close stops the expiry sweeper.
func (mc *MemoryCache) Close() error {
	mc.cleanup.Stop()
	close(mc.done)
	return nil
}

// callers hold mc.mu
func (mc *MemoryCache) evictOldest() {
	if el := mc.order.Back(); el != nil {
		mc.removeElement(el)
	}
}

// callers hold mc.mu
func (mc *MemoryCache) removeElement(el *list.Element) {
	mc.order.Remove(el)
	delete(mc.index, el.Value.(*memoryEntry).key)
}

func (mc *MemoryCache) sweepLoop() {
	for {
		select {
		case <-mc.done:
			return
		case <-mc.cleanup.C:
			mc.mu.Lock()
			now := time.Now()
			for el := mc.order.Back(); el != nil; {
				prev := el.Prev()
				if now.After(el.Value.(*memoryEntry).expireAt) {
					mc.removeElement(el)
				}
				el = prev
			}
			mc.mu.Unlock()
		}
	}
}

var _ Service = (*MemoryCache)(nil)
