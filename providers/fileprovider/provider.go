package fileprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pdark/i18n"
)

// ErrInvalidFile reports a translation file that could not be parsed or is
// not placed inside a locale directory.
var ErrInvalidFile = errors.New("fileprovider: invalid translation file")

type unmarshalFunc func(data []byte, v any) error

var formats = map[string]unmarshalFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// Provider serves patterns loaded from translation files. It is immutable
// after New returns.
type Provider struct {
	patterns map[i18n.Locale]map[string]string
}

// New walks fsys and loads every translation file it finds. Files directly
// at the root fail with ErrInvalidFile: the locale must come from the
// directory name. Unknown extensions are skipped.
func New(fsys fs.FS) (*Provider, error) {
	p := &Provider{patterns: make(map[i18n.Locale]map[string]string)}

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		unmarshal, ok := formats[strings.ToLower(path.Ext(filePath))]
		if !ok {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := i18n.Locale(path.Base(dir))
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var entries map[string]any
		if err := unmarshal(data, &entries); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		if p.patterns[locale] == nil {
			p.patterns[locale] = make(map[string]string)
		}
		for key, value := range flatten(entries, namespace) {
			p.patterns[locale][key] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Lookup implements i18n.Provider.
func (p *Provider) Lookup(_ context.Context, id string, locale i18n.Locale) (string, bool, error) {
	pattern, ok := p.patterns[locale][id]
	return pattern, ok, nil
}

// Locales returns every locale with at least one loaded pattern, sorted.
func (p *Provider) Locales() []i18n.Locale {
	locales := make([]i18n.Locale, 0, len(p.patterns))
	for locale := range p.patterns {
		locales = append(locales, locale)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

// IDs returns every translation id loaded for a locale, sorted.
func (p *Provider) IDs(locale i18n.Locale) []string {
	ids := make([]string, 0, len(p.patterns[locale]))
	for id := range p.patterns[locale] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
