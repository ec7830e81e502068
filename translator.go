package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// DefaultLocale is used when no default locale option is given.
const DefaultLocale Locale = "en"

// Translator resolves messages to localized text. It is the only place
// where locale, provider, fallback strategy and formatter registry meet;
// application code constructs messages without touching any of them.
//
// A Translator is immutable after construction and safe for concurrent use,
// provided its provider and any custom formatters are safe for concurrent
// reads. Render never mutates provider or registry state.
type Translator struct {
	provider      Provider
	registry      *Registry
	fallback      FallbackStrategy
	defaultLocale Locale
	missing       func(id string, locale Locale)
	log           *slog.Logger
}

// TranslatorOption configures a Translator during construction.
type TranslatorOption func(*Translator) error

// NewTranslator creates a Translator for the given provider. Without options
// it uses DefaultLocale, the default fallback strategy and a registry with
// the built-in formatters installed.
func NewTranslator(provider Provider, opts ...TranslatorOption) (*Translator, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	t := &Translator{
		provider:      provider,
		defaultLocale: DefaultLocale,
		log:           slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if t.fallback == nil {
		t.fallback = NewDefaultFallback(t.defaultLocale)
	}
	if t.registry == nil {
		t.registry = newDefaultRegistry(t)
	}

	return t, nil
}

// WithDefaultLocale sets the locale used when neither the render call nor
// the message specifies one. It is also the tail of the default fallback
// chain.
func WithDefaultLocale(locale Locale) TranslatorOption {
	return func(t *Translator) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		t.defaultLocale = locale
		return nil
	}
}

// WithFallback replaces the locale fallback strategy.
func WithFallback(s FallbackStrategy) TranslatorOption {
	return func(t *Translator) error {
		t.fallback = s
		return nil
	}
}

// WithRegistry replaces the formatter registry. The built-in formatters are
// not installed into a custom registry.
func WithRegistry(r *Registry) TranslatorOption {
	return func(t *Translator) error {
		t.registry = r
		return nil
	}
}

// WithMissingHandler sets a hook called whenever no provider in the fallback
// chain produced a pattern. Useful for monitoring translation gaps; the
// render still fails with a MissingTranslationError.
func WithMissingHandler(handler func(id string, locale Locale)) TranslatorOption {
	return func(t *Translator) error {
		t.missing = handler
		return nil
	}
}

// WithLogger sets the logger used by RenderOrID and internal diagnostics.
func WithLogger(log *slog.Logger) TranslatorOption {
	return func(t *Translator) error {
		if log != nil {
			t.log = log
		}
		return nil
	}
}

// DefaultLocale returns the configured default locale.
func (t *Translator) DefaultLocale() Locale { return t.defaultLocale }

// Registry returns the formatter registry for additional registrations.
// Register formatters before the first Render call.
func (t *Translator) Registry() *Registry { return t.registry }

// Render resolves a message to localized text.
//
// The explicit locale wins; when it is empty the message's preferred locale
// is used, then the translator's default. The fallback chain for that
// locale is walked until a provider yields a pattern; every argument the
// pattern references is then rendered through the formatter registry using
// the winning locale (which may differ from the requested one) and
// substituted into the pattern.
//
// Failures are explicit: ErrMissingTranslation when the whole chain comes
// up empty, ErrArgumentNotFound when the pattern references an unbound key,
// ErrNoFormatter when an argument's type has no formatter. Nothing is
// swallowed, so missing-translation reporting stays possible.
func (t *Translator) Render(ctx context.Context, msg Message, locale Locale) (string, error) {
	requested := locale
	if requested == "" {
		requested = msg.locale
	}
	if requested == "" {
		requested = t.defaultLocale
	}

	pattern, winning, found, err := t.lookupPattern(ctx, msg.id, requested)
	if err != nil {
		return "", err
	}
	if !found {
		if t.missing != nil {
			t.missing(msg.id, requested)
		}
		return "", &MissingTranslationError{ID: msg.id, Locale: requested}
	}

	return t.renderPattern(ctx, msg, pattern, winning)
}

// RenderOrID is the supported degradation for display code that must never
// fail: on any render error it logs the failure and returns the raw
// translation id.
func (t *Translator) RenderOrID(ctx context.Context, msg Message, locale Locale) string {
	text, err := t.Render(ctx, msg, locale)
	if err != nil {
		t.log.LogAttrs(ctx, slog.LevelWarn, "render failed, falling back to id",
			slog.String("id", msg.id),
			slog.String("locale", string(locale)),
			slog.String("error", err.Error()),
		)
		return msg.id
	}
	return text
}

// lookupPattern walks the fallback chain for id and returns the first
// pattern found along with the winning locale.
func (t *Translator) lookupPattern(ctx context.Context, id string, requested Locale) (string, Locale, bool, error) {
	for _, candidate := range t.fallback.Chain(requested) {
		pattern, ok, err := t.provider.Lookup(ctx, id, candidate)
		if err != nil {
			return "", candidate, false, fmt.Errorf("i18n: lookup %q in %q: %w", id, candidate, err)
		}
		if ok {
			return pattern, candidate, true, nil
		}
	}
	return "", "", false, nil
}

// renderPattern substitutes every argument reference in pattern using the
// message's bound arguments and the winning locale.
func (t *Translator) renderPattern(ctx context.Context, msg Message, pattern string, winning Locale) (string, error) {
	var b strings.Builder
	for _, frag := range parsePattern(pattern) {
		if !frag.arg {
			b.WriteString(frag.text)
			continue
		}

		a, ok := msg.arg(frag.key)
		if !ok {
			return "", &ArgumentNotFoundError{ID: msg.id, Key: frag.key}
		}

		f, err := t.registry.Resolve(a.Value)
		if err != nil {
			return "", err
		}

		text, err := f.Format(ctx, a.Value, winning, a.Options)
		if err != nil {
			return "", fmt.Errorf("i18n: format argument %q of %q: %w", frag.key, msg.id, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// pluralWord resolves the pluralized word for a count: the plural category
// comes from the locale's rule, the text from the provider under
// "<base>.<form>", trying the CLDR fallback forms before giving up. The
// pattern may reference {{count}}.
func (t *Translator) pluralWord(ctx context.Context, base string, n int, locale Locale) (string, error) {
	form := PluralRuleForLocale(locale)(n)

	forms := append([]string{form}, pluralFallbackForms(form)...)
	for _, f := range forms {
		id := base + "." + f
		pattern, winning, found, err := t.lookupPattern(ctx, id, locale)
		if err != nil {
			return "", err
		}
		if !found {
			continue
		}
		msg := MustBind(id, Named("count", n))
		return t.renderPattern(ctx, msg, pattern, winning)
	}

	if t.missing != nil {
		t.missing(base+"."+form, locale)
	}
	return "", &MissingTranslationError{ID: base + "." + form, Locale: locale}
}
