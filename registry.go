package i18n

import (
	"context"
	"reflect"
	"sync"
)

// Formatter renders a typed value into locale-appropriate text. Formatters
// must be pure functions of their inputs: no global locale state, no
// mutation. The context is only passed through to providers for formatters
// that resolve text themselves (lists, plurals, nested messages).
type Formatter interface {
	Format(ctx context.Context, value any, locale Locale, opts FormatterOptions) (string, error)
}

// FormatterFunc adapts a plain function to a Formatter.
type FormatterFunc func(ctx context.Context, value any, locale Locale, opts FormatterOptions) (string, error)

func (f FormatterFunc) Format(ctx context.Context, value any, locale Locale, opts FormatterOptions) (string, error) {
	return f(ctx, value, locale, opts)
}

type ifaceEntry struct {
	typ reflect.Type
	f   Formatter
}

type matchEntry struct {
	match func(reflect.Type) bool
	f     Formatter
}

// Registry maps an argument's runtime type to a formatter. Resolution picks
// the most specific match: exact type first, then registered interface
// capabilities in registration order, then type matchers, then the default
// formatter if one is installed.
//
// Register everything up front; Resolve caches per-type decisions and is
// safe for concurrent use once registration is done.
type Registry struct {
	exact    map[reflect.Type]Formatter
	ifaces   []ifaceEntry
	matchers []matchEntry
	def      Formatter
	cache    sync.Map // reflect.Type -> Formatter
}

// NewRegistry creates an empty registry. NewTranslator installs the built-in
// formatters automatically; start from an empty registry only when you want
// full control over dispatch.
func NewRegistry() *Registry {
	return &Registry{exact: make(map[reflect.Type]Formatter)}
}

// RegisterType associates a formatter with the exact dynamic type of sample.
func (r *Registry) RegisterType(sample any, f Formatter) *Registry {
	r.exact[reflect.TypeOf(sample)] = f
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
	return r
}

// RegisterInterface associates a formatter with an interface capability.
// Pass a nil pointer to the interface type:
//
//	r.RegisterInterface((*fmt.Stringer)(nil), f)
func (r *Registry) RegisterInterface(iface any, f Formatter) *Registry {
	t := reflect.TypeOf(iface).Elem()
	r.ifaces = append(r.ifaces, ifaceEntry{typ: t, f: f})
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
	return r
}

// RegisterMatch associates a formatter with a type predicate. Used for type
// families that cannot be enumerated, like slices.
func (r *Registry) RegisterMatch(match func(reflect.Type) bool, f Formatter) *Registry {
	r.matchers = append(r.matchers, matchEntry{match: match, f: f})
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
	return r
}

// RegisterDefault installs the fallback formatter used when nothing else
// matches. Without one, Resolve fails with a NoFormatterError.
func (r *Registry) RegisterDefault(f Formatter) *Registry {
	r.def = f
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
	return r
}

// Resolve selects the formatter for a value.
func (r *Registry) Resolve(value any) (Formatter, error) {
	if value == nil {
		if r.def != nil {
			return r.def, nil
		}
		return nil, &NoFormatterError{Type: "<nil>"}
	}

	t := reflect.TypeOf(value)
	if cached, ok := r.cache.Load(t); ok {
		return cached.(Formatter), nil
	}

	f := r.lookup(t)
	if f == nil {
		return nil, &NoFormatterError{Type: t.String()}
	}

	r.cache.Store(t, f)
	return f, nil
}

func (r *Registry) lookup(t reflect.Type) Formatter {
	if f, ok := r.exact[t]; ok {
		return f
	}
	for _, e := range r.ifaces {
		if t.Implements(e.typ) {
			return e.f
		}
	}
	for _, e := range r.matchers {
		if e.match(t) {
			return e.f
		}
	}
	return r.def
}
