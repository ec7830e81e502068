// Package cachedprovider decorates an i18n.Provider with a read-through
// cache, so slow sources like PostgreSQL are not hit on every render.
//
// Two variants are available. NewMemory keeps entries in-process with TTL
// expiration and collapses concurrent lookups for the same entry into one
// source call. NewRedis shares entries across processes through Redis, and
// degrades to direct source lookups when Redis is unavailable.
//
// Both variants cache misses as well as hits: a missing translation is a
// legitimate lookup result and repeating it against the source would defeat
// the cache during gap-heavy rollouts.
//
//	provider := cachedprovider.NewMemory(pgProvider,
//	    cachedprovider.WithTTL(time.Minute),
//	)
//	translator, err := i18n.NewTranslator(provider)
package cachedprovider
