package cache

import (
	"sync"
	"time"
)

type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
}

type Cache struct {
	data  map[string]expiring
	mutex sync.RWMutex

	ttl    time.Duration
	ticker *time.Ticker
	stop   chan struct{}
	now    func() time.Time
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]expiring),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stop)
}

type expiring struct {
	V any
	E time.Time
}

func (c *Cache) Put(key string, v any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	c.data[key] = e
}

func (c *Cache) Get(key string) (any, bool) {
	c.mutex.RLock()
	e, ok := c.data[key]
	c.mutex.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.E.IsZero() && c.now().After(e.E) {
		c.Delete(key)
		return nil, false
	}
	return e.V, true
}

func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	delete(c.data, key)
	c.mutex.Unlock()
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mutex.Lock()
	for k, e := range c.data {
		if !e.E.IsZero() && now.After(e.E) {
			delete(c.data, k)
		}
	}
	c.mutex.Unlock()
}
