package cachedprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/redis/go-redis/v9"

	"github.com/pdark/i18n"
)

type redisEntry struct {
	Pattern string `json:"pattern"`
	Found   bool   `json:"found"`
}

// Redis is a read-through cache around a Provider shared across processes.
// Cache failures are logged and fall through to the source, so a Redis
// outage degrades performance, not correctness.
type Redis struct {
	source i18n.Provider
	client redis.UniversalClient
	opts   *options
	log    *slog.Logger
}

// NewRedis wraps source with a Redis-backed cache. A nil logger discards
// cache failure logs.
func NewRedis(source i18n.Provider, client redis.UniversalClient, log *slog.Logger, opts ...Option) *Redis {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Redis{source: source, client: client, opts: o, log: log}
}

// Lookup implements i18n.Provider.
func (r *Redis) Lookup(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
	key := r.key(id, locale)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var e redisEntry
		if err := json.Unmarshal(raw, &e); err == nil {
			return e.Pattern, e.Found, nil
		}
		r.log.WarnContext(ctx, "discarding malformed cache entry", slog.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		r.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	pattern, found, err := r.source.Lookup(ctx, id, locale)
	if err != nil {
		return "", false, err
	}

	ttl := r.opts.ttl
	if !found {
		ttl = r.opts.negativeTTL
	}
	if data, err := json.Marshal(redisEntry{Pattern: pattern, Found: found}); err == nil {
		if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
			r.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return pattern, found, nil
}

// Invalidate drops the cached entry for one (id, locale) pair.
func (r *Redis) Invalidate(ctx context.Context, id string, locale i18n.Locale) error {
	return r.client.Del(ctx, r.key(id, locale)).Err()
}

// Flush drops every cached entry under this provider's prefix.
func (r *Redis) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.opts.prefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *Redis) key(id string, locale i18n.Locale) string {
	return r.opts.prefix + ":" + string(locale) + ":" + id
}
