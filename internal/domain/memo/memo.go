// Package memo memoizes query results for callers of the query engine.
//
// Entries are keyed on the dataset version together with the query
// parameters, so a replaced snapshot never serves a stale result: its new
// version simply produces new keys, and old ones age out.
package memo

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Key joins a dataset version, a query name and its parameters into a cache key.
// Each part is length-prefixed, so distinct part lists never share a key
// whatever bytes the parts contain.
func Key(version, query string, params ...string) string {
	var b strings.Builder
	writePart(&b, version)
	writePart(&b, query)
	for _, p := range params {
		writePart(&b, p)
	}
	return b.String()
}

func writePart(b *strings.Builder, p string) {
	b.WriteString(strconv.Itoa(len(p)))
	b.WriteByte(':')
	b.WriteString(p)
}

// node is one entry of the insertion-ordered list, newest at head.
type node struct {
	key  string
	prev *node
	next *node
}

type entry struct {
	value any
	n     *node
}

// Cache is a bounded, concurrency-safe result cache. When full, the oldest
// inserted entry is evicted.
type Cache struct {
	mu      sync.Mutex
	items   map[string]entry
	head    *node
	tail    *node
	maxSize int
	size    atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

// New creates a cache with configuration options.
func New(opts ...Option) *Cache {
	c := &Cache{
		maxSize: 1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.items = make(map[string]entry)
	return c
}

// Get returns the cached value for key.
func (c *Cache) Get(_ context.Context, key string) (any, bool) {
	c.mu.Lock()
	e, ok := c.items[key]
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return e.value, ok
}

// Put stores value under key, replacing any previous value.
func (c *Cache) Put(_ context.Context, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		c.items[key] = e
		return
	}

	if c.maxSize > 0 && len(c.items) >= c.maxSize {
		c.evictOldest()
	}

	n := &node{key: key, next: c.head}
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.items[key] = entry{value: value, n: n}
	c.size.Add(1)
}

// Forget removes key from the cache.
func (c *Cache) Forget(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.unlink(e.n)
		delete(c.items, key)
		c.size.Add(-1)
	}
}

// Purge drops every entry.
func (c *Cache) Purge(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]entry)
	c.head, c.tail = nil, nil
	c.size.Store(0)
}

// Size returns the current number of entries.
func (c *Cache) Size() int64 {
	return c.size.Load()
}

// Hits returns the number of successful lookups.
func (c *Cache) Hits() int64 { return c.hits.Load() }

// Misses returns the number of failed lookups.
func (c *Cache) Misses() int64 { return c.misses.Load() }

// evictOldest removes the tail. Must be called with c.mu held.
func (c *Cache) evictOldest() {
	if c.tail == nil {
		return
	}
	old := c.tail
	c.unlink(old)
	delete(c.items, old.key)
	c.size.Add(-1)
}

// unlink detaches n from the list. Must be called with c.mu held.
func (c *Cache) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
