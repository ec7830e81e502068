package i18n

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Translation ids the built-in list formatter resolves through the provider.
// Each has a literal default so lists render without any of them defined.
const (
	ListCommaID = "i18n.list.comma"
	ListAndID   = "i18n.list.and"
	ListOrID    = "i18n.list.or"
	ListEmptyID = "i18n.list.empty"
)

// newDefaultRegistry builds the registry NewTranslator installs: string
// identity, locale-aware numbers, date/time, lists, nested messages, and a
// capability formatter for fmt.Stringer. Formatters that resolve text
// themselves (lists, plurals, nested messages) are bound to the translator.
func newDefaultRegistry(t *Translator) *Registry {
	r := NewRegistry()

	r.RegisterType("", FormatterFunc(formatString))

	num := &numberFormatter{t: t}
	for _, sample := range []any{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0),
	} {
		r.RegisterType(sample, num)
	}

	r.RegisterType(time.Time{}, FormatterFunc(formatTime))
	r.RegisterType(Message{}, &messageFormatter{t: t})
	r.RegisterMatch(isListType, &listFormatter{t: t})
	r.RegisterInterface((*fmt.Stringer)(nil), FormatterFunc(formatStringer))

	return r
}

// localeTag converts an opaque locale into an x/text language tag.
// Underscore separators are tolerated since providers use either style.
func localeTag(locale Locale) language.Tag {
	return language.Make(strings.ReplaceAll(string(locale), "_", "-"))
}

func formatString(_ context.Context, value any, _ Locale, _ FormatterOptions) (string, error) {
	return value.(string), nil
}

func formatStringer(_ context.Context, value any, _ Locale, _ FormatterOptions) (string, error) {
	return value.(fmt.Stringer).String(), nil
}

// numberFormatter renders integers and floats. Grouping and precision come
// from the bind-time options; the plural option appends a word resolved
// through the provider under "<base>.<form>".
type numberFormatter struct {
	t *Translator
}

func (f *numberFormatter) Format(ctx context.Context, value any, locale Locale, opts FormatterOptions) (string, error) {
	text, err := formatNumeric(value, locale, opts)
	if err != nil {
		return "", err
	}

	base := opts.stringOpt(OptPlural)
	if base == "" {
		return text, nil
	}

	word, err := f.t.pluralWord(ctx, base, toCount(value), locale)
	if err != nil {
		return "", err
	}
	return text + " " + word, nil
}

func formatNumeric(value any, locale Locale, opts FormatterOptions) (string, error) {
	prec, hasPrec := opts.intOpt(OptPrecision)

	if opts.boolOpt(OptGrouping) {
		var numOpts []number.Option
		if hasPrec {
			numOpts = append(numOpts, number.MinFractionDigits(prec), number.MaxFractionDigits(prec))
		}
		p := message.NewPrinter(localeTag(locale))
		return p.Sprint(number.Decimal(value, numOpts...)), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if hasPrec {
			return strconv.FormatFloat(float64(rv.Int()), 'f', prec, 64), nil
		}
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if hasPrec {
			return strconv.FormatFloat(float64(rv.Uint()), 'f', prec, 64), nil
		}
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		if !hasPrec {
			prec = -1
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		return strconv.FormatFloat(rv.Float(), 'f', prec, bits), nil
	default:
		return "", &NoFormatterError{Type: rv.Type().String()}
	}
}

func toCount(value any) int {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return int(rv.Float())
	default:
		return 0
	}
}

// listFormatter joins slice elements with locale-aware separators. Elements
// are dispatched through the registry, so a list may mix strings, numbers
// and nested messages. Separators are themselves translations (ListCommaID
// and friends) with sensible literal defaults.
type listFormatter struct {
	t *Translator
}

func isListType(t reflect.Type) bool {
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return false
	}
	// []byte is binary data, not a list of values.
	return t.Elem().Kind() != reflect.Uint8
}

func (f *listFormatter) Format(ctx context.Context, value any, locale Locale, opts FormatterOptions) (string, error) {
	rv := reflect.ValueOf(value)
	n := rv.Len()

	if n == 0 {
		return f.separator(ctx, ListEmptyID, locale, "")
	}

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		ef, err := f.t.registry.Resolve(elem)
		if err != nil {
			return "", err
		}
		s, err := ef.Format(ctx, elem, locale, nil)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	if n == 1 {
		return parts[0], nil
	}

	conjID, conjDefault := ListAndID, " and "
	if opts.stringOpt(OptList) == "or" {
		conjID, conjDefault = ListOrID, " or "
	}
	conj, err := f.separator(ctx, conjID, locale, conjDefault)
	if err != nil {
		return "", err
	}

	head := parts[0]
	if n > 2 {
		comma, err := f.separator(ctx, ListCommaID, locale, ", ")
		if err != nil {
			return "", err
		}
		head = strings.Join(parts[:n-1], comma)
	}

	return head + conj + parts[n-1], nil
}

// separator resolves a separator translation, falling back to a literal
// default when no provider carries it.
func (f *listFormatter) separator(ctx context.Context, id string, locale Locale, def string) (string, error) {
	pattern, _, found, err := f.t.lookupPattern(ctx, id, locale)
	if err != nil {
		return "", err
	}
	if !found {
		return def, nil
	}
	return pattern, nil
}

// messageFormatter renders nested messages by recursing into the translator
// with the winning locale of the outer render.
type messageFormatter struct {
	t *Translator
}

func (f *messageFormatter) Format(ctx context.Context, value any, locale Locale, _ FormatterOptions) (string, error) {
	return f.t.Render(ctx, value.(Message), locale)
}

// Date style layouts per language. Month names follow Go's time package, so
// textual styles are only defined where the layout stays correct; other
// locales use numeric layouts throughout. The layout option overrides any
// style.
var dateStyleLayouts = map[string]map[string]string{
	"en": {
		"short":  "1/2/06",
		"medium": "Jan 2, 2006",
		"long":   "January 2, 2006",
		"full":   "Monday, January 2, 2006",
	},
	"en-gb": {
		"short":  "02/01/06",
		"medium": "02 Jan 2006",
		"long":   "2 January 2006",
		"full":   "Monday, 2 January 2006",
	},
	"de": {
		"short":  "02.01.06",
		"medium": "02.01.2006",
		"long":   "02.01.2006",
		"full":   "02.01.2006",
	},
	"fr": {
		"short":  "02/01/06",
		"medium": "02/01/2006",
		"long":   "02/01/2006",
		"full":   "02/01/2006",
	},
	"it": {
		"short":  "02/01/06",
		"medium": "02/01/2006",
		"long":   "02/01/2006",
		"full":   "02/01/2006",
	},
	"ja": {
		"short":  "2006/01/02",
		"medium": "2006/01/02",
		"long":   "2006/01/02",
		"full":   "2006/01/02",
	},
}

func formatTime(_ context.Context, value any, locale Locale, opts FormatterOptions) (string, error) {
	tm := value.(time.Time)

	if layout := opts.stringOpt(OptLayout); layout != "" {
		return tm.Format(layout), nil
	}

	style := opts.stringOpt(OptStyle)
	if style == "" {
		style = "medium"
	}

	layouts := lookupDateLayouts(locale)
	layout, ok := layouts[style]
	if !ok {
		layout = layouts["medium"]
	}
	return tm.Format(layout), nil
}

func lookupDateLayouts(locale Locale) map[string]string {
	norm := strings.ToLower(strings.ReplaceAll(string(locale), "_", "-"))
	if layouts, ok := dateStyleLayouts[norm]; ok {
		return layouts
	}
	if cut := strings.IndexByte(norm, '-'); cut > 0 {
		if layouts, ok := dateStyleLayouts[norm[:cut]]; ok {
			return layouts
		}
	}
	return dateStyleLayouts["en"]
}
