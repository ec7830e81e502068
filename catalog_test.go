package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdark/i18n"
)

func TestCatalog_Define(t *testing.T) {
	t.Parallel()

	t.Run("registers definitions", func(t *testing.T) {
		t.Parallel()
		c := i18n.NewCatalog()

		d, err := c.Define("greeting", i18n.P("name"))
		require.NoError(t, err)
		require.Equal(t, "greeting", d.ID())
		require.Len(t, d.Params(), 1)

		got, ok := c.Lookup("greeting")
		require.True(t, ok)
		require.Same(t, d, got)
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog().Define("")
		require.ErrorIs(t, err, i18n.ErrEmptyID)
	})

	t.Run("empty parameter name", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog().Define("msg", i18n.P(""))
		require.ErrorIs(t, err, i18n.ErrEmptyKey)
	})

	t.Run("duplicate parameter names", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog().Define("msg", i18n.P("a"), i18n.P("a"))
		require.ErrorIs(t, err, i18n.ErrDuplicateKey)
	})

	t.Run("redefining an id", func(t *testing.T) {
		t.Parallel()
		c := i18n.NewCatalog()
		_, err := c.Define("msg")
		require.NoError(t, err)
		_, err = c.Define("msg")
		require.ErrorIs(t, err, i18n.ErrRedefined)
	})

	t.Run("ids are sorted", func(t *testing.T) {
		t.Parallel()
		c := i18n.NewCatalog()
		c.MustDefine("z.last")
		c.MustDefine("a.first")
		c.MustDefine("m.middle")
		require.Equal(t, []string{"a.first", "m.middle", "z.last"}, c.IDs())
	})

	t.Run("MustDefine panics on error", func(t *testing.T) {
		t.Parallel()
		c := i18n.NewCatalog()
		c.MustDefine("msg")
		require.Panics(t, func() { c.MustDefine("msg") })
	})
}

func TestDefinition_Bind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("binds values under parameter names", func(t *testing.T) {
		t.Parallel()
		c := i18n.NewCatalog()
		greeting := c.MustDefine("greeting", i18n.P("name"), i18n.P("count"))

		m, err := greeting.Bind("user", 3)
		require.NoError(t, err)

		p := i18n.NewStatic().Add("greeting", "en", "Hi {{name}}, {{count}} new")
		tr := newTestTranslator(t, p)

		text, err := tr.Render(ctx, m, "en")
		require.NoError(t, err)
		require.Equal(t, "Hi user, 3 new", text)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		t.Parallel()
		d := i18n.NewCatalog().MustDefine("msg", i18n.P("a"), i18n.P("b"))

		_, err := d.Bind("only one")
		require.ErrorIs(t, err, i18n.ErrArityMismatch)

		_, err = d.Bind("one", "two", "three")
		require.ErrorIs(t, err, i18n.ErrArityMismatch)
	})

	t.Run("typed parameters reject wrong values", func(t *testing.T) {
		t.Parallel()
		d := i18n.NewCatalog().MustDefine("msg", i18n.Typed[string]("name"))

		_, err := d.Bind(42)
		require.ErrorIs(t, err, i18n.ErrParamType)

		_, err = d.Bind("fine")
		require.NoError(t, err)
	})

	t.Run("options survive type checking", func(t *testing.T) {
		t.Parallel()
		d := i18n.NewCatalog().MustDefine("msg", i18n.Typed[int]("n"))

		m, err := d.Bind(i18n.Opt(1234567, i18n.FormatterOptions{i18n.OptGrouping: true}))
		require.NoError(t, err)

		p := i18n.NewStatic().Add("msg", "en", "{{n}}")
		tr := newTestTranslator(t, p)

		text, err := tr.Render(ctx, m, "en")
		require.NoError(t, err)
		require.Equal(t, "1,234,567", text)
	})

	t.Run("MustBind panics on arity error", func(t *testing.T) {
		t.Parallel()
		d := i18n.NewCatalog().MustDefine("msg", i18n.P("a"))
		require.Panics(t, func() { d.MustBind() })
	})
}
