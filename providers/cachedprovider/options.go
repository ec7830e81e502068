package cachedprovider

import "time"

const (
	defaultTTL    = 5 * time.Minute
	defaultPrefix = "i18n"
)

type options struct {
	ttl         time.Duration
	negativeTTL time.Duration
	prefix      string
}

func defaultOptions() *options {
	return &options{
		ttl:         defaultTTL,
		negativeTTL: defaultTTL,
		prefix:      defaultPrefix,
	}
}

// Option configures a cached provider.
type Option func(*options)

// WithTTL sets how long cached patterns stay fresh. Zero or negative
// values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithNegativeTTL sets a separate lifetime for cached misses. Short
// negative TTLs make freshly added translations visible sooner without
// giving up hit caching.
func WithNegativeTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.negativeTTL = ttl
		}
	}
}

// WithPrefix sets the Redis key prefix. Ignored by the memory variant.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
