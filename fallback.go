package i18n

import "strings"

// FallbackStrategy produces the ordered list of locales to try when
// resolving a translation. The first element is always the requested locale
// itself; the chain is finite and free of duplicates.
type FallbackStrategy interface {
	Chain(locale Locale) []Locale
}

// FallbackFunc adapts a plain function to a FallbackStrategy.
type FallbackFunc func(locale Locale) []Locale

func (f FallbackFunc) Chain(locale Locale) []Locale { return f(locale) }

// NewDefaultFallback returns the standard strategy: the requested locale is
// generalized by stripping subtags from the end, then the default locale is
// appended and generalized the same way. Requesting "de-CH" with default
// "en-US" yields de-CH, de, en-US, en.
func NewDefaultFallback(defaultLocale Locale) FallbackStrategy {
	return FallbackFunc(func(locale Locale) []Locale {
		chain := expandLocale(nil, locale)
		return expandLocale(chain, defaultLocale)
	})
}

// NewStaticFallback returns a strategy with a fixed priority list, tried
// after the requested locale. Useful for user preference lists.
func NewStaticFallback(locales ...Locale) FallbackStrategy {
	return FallbackFunc(func(locale Locale) []Locale {
		chain := []Locale{locale}
		for _, l := range locales {
			chain = appendLocale(chain, l)
		}
		return chain
	})
}

// expandLocale appends locale and its generalizations to chain, skipping
// duplicates. Both "-" and "_" act as subtag separators since providers in
// the wild use either convention.
func expandLocale(chain []Locale, locale Locale) []Locale {
	for locale != "" {
		chain = appendLocale(chain, locale)
		cut := strings.LastIndexAny(string(locale), "-_")
		if cut < 0 {
			break
		}
		locale = locale[:cut]
	}
	return chain
}

func appendLocale(chain []Locale, locale Locale) []Locale {
	for _, l := range chain {
		if l == locale {
			return chain
		}
	}
	return append(chain, locale)
}
