package memo

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithMaxSize bounds the number of cached results. Zero or negative means unbounded.
func WithMaxSize(size int) Option {
	return func(c *Cache) {
		c.maxSize = size
	}
}
