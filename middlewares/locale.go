package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/pdark/i18n"
)

type contextKey struct{ name string }

var localeKey = &contextKey{"locale"}

const defaultCookieName = "lang"

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	// CookieName is the cookie checked before the Accept-Language header.
	// Defaults to "lang".
	CookieName string

	// QueryParam, when set, is checked before the cookie. Useful for
	// locale preview links.
	QueryParam string
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithCookieName overrides the locale cookie name.
func WithCookieName(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.CookieName = name
		}
	}
}

// WithQueryParam enables locale selection via a query parameter.
func WithQueryParam(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.QueryParam = name
	}
}

// Locale returns middleware that resolves the request locale and stores it
// in the request context. Resolution order: query parameter (if enabled),
// cookie, Accept-Language header, first available locale. Query and cookie
// values must match one of the available locales exactly or by base
// language, otherwise they are ignored.
func Locale(available []i18n.Locale, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{CookieName: defaultCookieName}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := resolveLocale(r, cfg, available)
			ctx := context.WithValue(r.Context(), localeKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the locale stored by the Locale middleware, or
// "" when the middleware did not run.
func LocaleFromContext(ctx context.Context) i18n.Locale {
	locale, _ := ctx.Value(localeKey).(i18n.Locale)
	return locale
}

func resolveLocale(r *http.Request, cfg *LocaleConfig, available []i18n.Locale) i18n.Locale {
	if cfg.QueryParam != "" {
		if v := r.URL.Query().Get(cfg.QueryParam); v != "" {
			if locale, ok := matchAvailable(v, available); ok {
				return locale
			}
		}
	}

	if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
		if locale, ok := matchAvailable(cookie.Value, available); ok {
			return locale
		}
	}

	return i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), available)
}

// matchAvailable matches a single candidate tag against the available
// locales, exact first, then by base language.
func matchAvailable(value string, available []i18n.Locale) (i18n.Locale, bool) {
	norm := strings.ToLower(strings.TrimSpace(value))
	if norm == "" {
		return "", false
	}

	var partial i18n.Locale
	for _, avail := range available {
		availNorm := strings.ToLower(string(avail))
		if norm == availNorm {
			return avail, true
		}
		if partial == "" && baseLang(norm) == baseLang(availNorm) {
			partial = avail
		}
	}
	if partial != "" {
		return partial, true
	}
	return "", false
}

func baseLang(tag string) string {
	if cut := strings.IndexAny(tag, "-_"); cut > 0 {
		return tag[:cut]
	}
	return tag
}
