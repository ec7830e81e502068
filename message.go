package i18n

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

// Locale identifies a language, optionally with a region subtag
// (e.g. "en", "en-US", "de-CH"). The core treats it as opaque; only the
// fallback strategy knows how to generalize it.
type Locale string

// FormatterOptions carries per-argument formatting configuration attached at
// bind time. Recognized keys are formatter-specific; formatters ignore keys
// they do not know.
type FormatterOptions map[string]any

// Option keys recognized by the built-in formatters.
const (
	// OptGrouping enables locale-aware digit grouping for numbers (bool).
	OptGrouping = "grouping"
	// OptPrecision fixes the number of fraction digits for numbers (int).
	OptPrecision = "precision"
	// OptStyle selects a date style: "short", "medium", "long" or "full".
	OptStyle = "style"
	// OptLayout overrides the date layout with an explicit Go time layout.
	OptLayout = "layout"
	// OptPlural appends a pluralized word resolved from the provider under
	// "<base>.<form>" where form is the CLDR plural category for the value.
	OptPlural = "plural"
	// OptList selects the final list conjunction: "and" (default) or "or".
	OptList = "list"
)

func (o FormatterOptions) boolOpt(key string) bool {
	v, ok := o[key].(bool)
	return ok && v
}

func (o FormatterOptions) intOpt(key string) (int, bool) {
	switch v := o[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

func (o FormatterOptions) stringOpt(key string) string {
	v, _ := o[key].(string)
	return v
}

// Arg is a single bound argument: a key (positional index rendered as a
// decimal string, or a name), the value, and optional formatter options.
type Arg struct {
	Key     string
	Value   any
	Options FormatterOptions
}

// Optioned pairs a value with formatter options. Use it where a plain value
// is expected, either positionally in Bind or as the value of Named.
type Optioned struct {
	Value   any
	Options FormatterOptions
}

// Opt wraps a value with formatter options for binding.
func Opt(value any, opts FormatterOptions) Optioned {
	return Optioned{Value: value, Options: opts}
}

// Named binds a value under an explicit name. The value may be wrapped with
// Opt to attach formatter options.
func Named(key string, value any) Arg {
	if o, ok := value.(Optioned); ok {
		return Arg{Key: key, Value: o.Value, Options: o.Options}
	}
	return Arg{Key: key, Value: value}
}

// Message is an immutable pairing of a translation id with its bound
// arguments. Construction happens in back-end code via Bind; rendering
// happens later, at display time, through a Translator. A Message never
// changes after construction and is safe to share between goroutines.
type Message struct {
	id     string
	locale Locale
	args   []Arg
	index  map[string]int
}

// Bind constructs a Message for the given translation id.
//
// Plain values become positional arguments with keys "0".."n-1" in call
// order. Arg values (built with Named) keep their name, and Optioned values
// (built with Opt) are positional with options attached. Positional and
// named keys share one namespace: binding Named("0", x) alongside a first
// positional argument fails with a DuplicateKeyError.
//
// No translation lookup happens here; Bind only captures data.
func Bind(id string, args ...any) (Message, error) {
	if id == "" {
		return Message{}, ErrEmptyID
	}

	m := Message{
		id:    id,
		args:  make([]Arg, 0, len(args)),
		index: make(map[string]int, len(args)),
	}

	pos := 0
	for _, raw := range args {
		var a Arg
		switch v := raw.(type) {
		case Arg:
			if v.Key == "" {
				return Message{}, fmt.Errorf("%w (message %q)", ErrEmptyKey, id)
			}
			a = v
		case Optioned:
			a = Arg{Key: strconv.Itoa(pos), Value: v.Value, Options: v.Options}
			pos++
		default:
			a = Arg{Key: strconv.Itoa(pos), Value: raw}
			pos++
		}

		if _, dup := m.index[a.Key]; dup {
			return Message{}, &DuplicateKeyError{ID: id, Key: a.Key}
		}

		// Detach the options map from the caller so later mutation of the
		// map passed into Bind cannot leak into the message.
		a.Options = maps.Clone(a.Options)

		m.index[a.Key] = len(m.args)
		m.args = append(m.args, a)
	}

	return m, nil
}

// MustBind is like Bind but panics on error. Intended for statically known
// argument lists.
func MustBind(id string, args ...any) Message {
	m, err := Bind(id, args...)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the translation id.
func (m Message) ID() string { return m.id }

// Locale returns the message's preferred locale, or "" when none was set.
func (m Message) Locale() Locale { return m.locale }

// WithLocale returns a copy of the message preferring the given locale.
// The receiver is left untouched. A typical use case is showing the same
// message in two languages on one screen, like a language selector that
// displays "German - Deutsch".
func (m Message) WithLocale(locale Locale) Message {
	m.locale = locale
	return m
}

// Get returns the value bound under key. The key is either a name or a
// positional index rendered as a decimal string ("0", "1", ...).
func (m Message) Get(key string) (any, error) {
	i, ok := m.index[key]
	if !ok {
		return nil, &ArgumentNotFoundError{ID: m.id, Key: key}
	}
	return m.args[i].Value, nil
}

// Keys returns the argument keys in bind order.
func (m Message) Keys() []string {
	keys := make([]string, len(m.args))
	for i, a := range m.args {
		keys[i] = a.Key
	}
	return keys
}

// Len returns the number of bound arguments.
func (m Message) Len() int { return len(m.args) }

// Equal reports structural equality: same id, same keys, same values.
// The preferred locale and formatter options are irrelevant, which keeps
// assertions in tests independent of any locale concern.
func (m Message) Equal(o Message) bool {
	if m.id != o.id || len(m.args) != len(o.args) {
		return false
	}
	for i, a := range m.args {
		b := o.args[i]
		if a.Key != b.Key {
			return false
		}
		if am, ok := a.Value.(Message); ok {
			bm, ok := b.Value.(Message)
			if !ok || !am.Equal(bm) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// String returns a diagnostic representation. It is not localized text;
// rendering requires a Translator.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString("Message(")
	b.WriteString(m.id)
	if m.locale != "" {
		fmt.Fprintf(&b, ", locale=%s", m.locale)
	}
	for _, a := range m.args {
		fmt.Fprintf(&b, ", %s=%v", a.Key, a.Value)
	}
	b.WriteString(")")
	return b.String()
}

// arg returns the full argument (value plus options) bound under key.
func (m Message) arg(key string) (Arg, bool) {
	i, ok := m.index[key]
	if !ok {
		return Arg{}, false
	}
	return m.args[i], true
}
