package i18n

import (
	"context"
	"sync"
)

// Missing identifies one translation gap: an id with no pattern for a
// locale.
type Missing struct {
	ID     string
	Locale Locale
}

// AuditMissing checks every (id, locale) pair against the provider and
// returns the gaps in input order. It goes through the public Provider
// contract only, so it works with any provider, composed or not. The ids
// typically come from a Catalog or a provider's base-locale inventory.
//
// Note that AuditMissing checks locales exactly as given; it deliberately
// does not apply a fallback strategy, because a gap report should show
// where translations are actually absent, not where rendering would still
// succeed via fallback.
func AuditMissing(ctx context.Context, p Provider, ids []string, locales ...Locale) ([]Missing, error) {
	var gaps []Missing
	for _, locale := range locales {
		for _, id := range ids {
			_, ok, err := p.Lookup(ctx, id, locale)
			if err != nil {
				return nil, err
			}
			if !ok {
				gaps = append(gaps, Missing{ID: id, Locale: locale})
			}
		}
	}
	return gaps, nil
}

// MissingRecorder accumulates missing-translation events. Plug its Handler
// into WithMissingHandler to collect live gaps during a test run or a
// production soak.
type MissingRecorder struct {
	mu      sync.Mutex
	entries []Missing
}

// Handler returns the hook to pass to WithMissingHandler.
func (r *MissingRecorder) Handler() func(id string, locale Locale) {
	return func(id string, locale Locale) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.entries = append(r.entries, Missing{ID: id, Locale: locale})
	}
}

// Entries returns a copy of the recorded gaps in arrival order.
func (r *MissingRecorder) Entries() []Missing {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Missing, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset clears the recorded gaps.
func (r *MissingRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
