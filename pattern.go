package i18n

import "strings"

// Patterns are raw template strings supplied by providers. Argument
// references use the {{key}} form where key is a name or a positional
// index: "Hello, {{name}}." or "{{0}} items". Braces outside a complete
// {{...}} pair are literal text, so no escaping is needed for the common
// single-brace cases.

type fragment struct {
	text string
	key  string
	arg  bool
}

func parsePattern(raw string) []fragment {
	var frags []fragment
	text := func(s string) {
		if s == "" {
			return
		}
		// Merge adjacent literal runs so stray braces don't fragment output.
		if n := len(frags); n > 0 && !frags[n-1].arg {
			frags[n-1].text += s
			return
		}
		frags = append(frags, fragment{text: s})
	}

	for len(raw) > 0 {
		open := strings.Index(raw, "{{")
		if open < 0 {
			text(raw)
			break
		}
		close := strings.Index(raw[open+2:], "}}")
		if close < 0 {
			text(raw)
			break
		}
		key := strings.TrimSpace(raw[open+2 : open+2+close])
		if key == "" {
			// "{{}}" carries no reference; keep it literal.
			text(raw[:open+2+close+2])
			raw = raw[open+2+close+2:]
			continue
		}
		text(raw[:open])
		frags = append(frags, fragment{key: key, arg: true})
		raw = raw[open+2+close+2:]
	}

	return frags
}

// PatternKeys returns the argument keys referenced by a pattern, in order of
// first appearance. Report tooling uses this to cross-check patterns against
// the keys a message actually binds.
func PatternKeys(pattern string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, f := range parsePattern(pattern) {
		if f.arg && !seen[f.key] {
			seen[f.key] = true
			keys = append(keys, f.key)
		}
	}
	return keys
}
