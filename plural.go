package i18n

import "strings"

// PluralRule determines the CLDR plural category for a count.
type PluralRule func(n int) string

// Plural categories as defined by Unicode CLDR. Not all languages use all
// of them.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var pluralEnglish PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// German, Dutch, Scandinavian: one (1), other (everything else including 0).
var pluralGermanic = pluralEnglish

var pluralRomance PluralRule = func(n int) string {
	if n == 0 || abs(n) == 1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

var pluralSlavic PluralRule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return PluralOne
	}
	mod10, mod100 := a%10, a%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

var pluralArabic PluralRule = func(n int) string {
	a := abs(n)
	switch {
	case n == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a == 2:
		return PluralTwo
	}
	mod100 := a % 100
	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}
	if mod100 >= 11 && mod100 <= 99 {
		return PluralMany
	}
	return PluralOther
}

// Japanese, Chinese, Korean and similar languages have no plural forms.
var pluralNone PluralRule = func(int) string { return PluralOther }

// PluralRuleForLocale returns the plural rule for a locale, keyed by its
// base language. Unknown languages get the English rule, which is the most
// common shape (one/other).
func PluralRuleForLocale(locale Locale) PluralRule {
	lang := strings.ToLower(string(locale))
	if cut := strings.IndexAny(lang, "-_"); cut > 0 {
		lang = lang[:cut]
	}

	switch lang {
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return pluralSlavic
	case "fr", "it", "pt", "es":
		return pluralRomance
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return pluralNone
	case "ar":
		return pluralArabic
	case "de", "nl", "sv", "no", "da", "is":
		return pluralGermanic
	default:
		return pluralEnglish
	}
}

// pluralFallbackForms lists the categories to try when a translation lacks
// the exact plural form. Every chain ends in "other".
func pluralFallbackForms(form string) []string {
	switch form {
	case PluralZero, PluralOne, PluralMany:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return nil
	}
}
