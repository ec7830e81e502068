package i18n

import (
	"context"
	"sort"
	"sync"
)

// Provider is the pluggable source of patterns. Lookup returns the raw
// pattern for (id, locale) with ok=true, or ok=false when the provider has
// no pattern for that pair. Not-found is a defined return value, never an
// error; err reports infrastructure failure only (connection loss, parse
// errors) and aborts the whole render.
//
// The resolver only reads from providers during a render call, so any
// implementation that is safe for concurrent reads works unchanged under
// concurrent renders.
type Provider interface {
	Lookup(ctx context.Context, id string, locale Locale) (pattern string, ok bool, err error)
}

// ProviderFunc adapts a plain function to a Provider.
type ProviderFunc func(ctx context.Context, id string, locale Locale) (string, bool, error)

func (f ProviderFunc) Lookup(ctx context.Context, id string, locale Locale) (string, bool, error) {
	return f(ctx, id, locale)
}

// Static is an in-memory provider backed by a pattern table. It is the
// reference Provider implementation and the workhorse for tests. Add and
// Lookup may be called concurrently.
type Static struct {
	mu       sync.RWMutex
	patterns map[Locale]map[string]string
}

// NewStatic creates an empty in-memory provider.
func NewStatic() *Static {
	return &Static{patterns: make(map[Locale]map[string]string)}
}

// Add registers a pattern for (id, locale), replacing any previous one.
// Returns the provider for chaining.
func (s *Static) Add(id string, locale Locale, pattern string) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.patterns[locale]
	if !ok {
		byID = make(map[string]string)
		s.patterns[locale] = byID
	}
	byID[id] = pattern
	return s
}

// AddAll registers a batch of patterns for one locale.
func (s *Static) AddAll(locale Locale, patterns map[string]string) *Static {
	for id, p := range patterns {
		s.Add(id, locale, p)
	}
	return s
}

func (s *Static) Lookup(_ context.Context, id string, locale Locale) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pattern, ok := s.patterns[locale][id]
	return pattern, ok, nil
}

// Locales returns the locales with at least one pattern, sorted.
func (s *Static) Locales() []Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	locales := make([]Locale, 0, len(s.patterns))
	for l := range s.patterns {
		locales = append(locales, l)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

// IDs returns the translation ids registered for a locale, sorted. Report
// tooling uses this to diff locales against a base locale.
func (s *Static) IDs(locale Locale) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.patterns[locale]))
	for id := range s.patterns[locale] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Composite tries an ordered list of child providers for each (id, locale)
// pair. All children are exhausted for one locale before the resolver's
// fallback strategy moves on to the next locale, which keeps composition
// transparent to the resolver.
type Composite struct {
	children []Provider
}

// NewComposite creates a provider that consults children in order.
func NewComposite(children ...Provider) *Composite {
	return &Composite{children: children}
}

func (c *Composite) Lookup(ctx context.Context, id string, locale Locale) (string, bool, error) {
	for _, child := range c.children {
		pattern, ok, err := child.Lookup(ctx, id, locale)
		if err != nil {
			return "", false, err
		}
		if ok {
			return pattern, true, nil
		}
	}
	return "", false, nil
}
