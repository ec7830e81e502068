package fileprovider_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/pdark/i18n"
	"github.com/pdark/i18n/providers/fileprovider"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads JSON with nested keys", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{
				"hello": "Hello",
				"buttons": {"save": "Save", "cancel": "Cancel"}
			}`)},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)

		pattern, ok, err := p.Lookup(ctx, "common.hello", "en")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Hello", pattern)

		pattern, ok, err = p.Lookup(ctx, "common.buttons.save", "en")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Save", pattern)
	})

	t.Run("loads YAML in both extensions", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"fr/common.yaml": &fstest.MapFile{Data: []byte("hello: Bonjour\n")},
			"fr/errors.yml":  &fstest.MapFile{Data: []byte("not_found: Introuvable\n")},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)

		pattern, ok, err := p.Lookup(ctx, "common.hello", "fr")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Bonjour", pattern)

		pattern, ok, err = p.Lookup(ctx, "errors.not_found", "fr")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Introuvable", pattern)
	})

	t.Run("loads TOML", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"de/common.toml": &fstest.MapFile{Data: []byte("hello = \"Hallo\"\n\n[buttons]\nsave = \"Speichern\"\n")},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)

		pattern, ok, err := p.Lookup(ctx, "common.buttons.save", "de")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Speichern", pattern)
	})

	t.Run("multiple locales and namespaces", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{"hello": "Hello"}`)},
			"en/errors.json": &fstest.MapFile{Data: []byte(`{"not_found": "Not found"}`)},
			"de/common.json": &fstest.MapFile{Data: []byte(`{"hello": "Hallo"}`)},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)
		require.Equal(t, []i18n.Locale{"de", "en"}, p.Locales())
		require.Equal(t, []string{"common.hello", "errors.not_found"}, p.IDs("en"))
	})

	t.Run("unknown extensions are skipped", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{"hello": "Hello"}`)},
			"en/notes.txt":   &fstest.MapFile{Data: []byte("not a translation file")},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)
		require.Equal(t, []string{"common.hello"}, p.IDs("en"))
	})

	t.Run("file at root fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"common.json": &fstest.MapFile{Data: []byte(`{"hello": "Hello"}`)},
		}

		_, err := fileprovider.New(fsys)
		require.ErrorIs(t, err, fileprovider.ErrInvalidFile)
	})

	t.Run("malformed file fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{not json`)},
		}

		_, err := fileprovider.New(fsys)
		require.ErrorIs(t, err, fileprovider.ErrInvalidFile)
	})

	t.Run("non-string leaves are stringified", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{"limit": 42}`)},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)

		pattern, ok, err := p.Lookup(ctx, "common.limit", "en")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "42", pattern)
	})

	t.Run("drives a translator end to end", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{"welcome": "Welcome, {{name}}!"}`)},
			"de/common.json": &fstest.MapFile{Data: []byte(`{"welcome": "Willkommen, {{name}}!"}`)},
		}

		p, err := fileprovider.New(fsys)
		require.NoError(t, err)

		tr, err := i18n.NewTranslator(p)
		require.NoError(t, err)

		m := i18n.MustBind("common.welcome", i18n.Named("name", "Alice"))

		text, err := tr.Render(ctx, m, "de")
		require.NoError(t, err)
		require.Equal(t, "Willkommen, Alice!", text)
	})
}
