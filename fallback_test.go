package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdark/i18n"
)

func TestDefaultFallback(t *testing.T) {
	t.Parallel()

	t.Run("strips subtags then appends default chain", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewDefaultFallback("en-US")
		require.Equal(t,
			[]i18n.Locale{"de-CH", "de", "en-US", "en"},
			s.Chain("de-CH"))
	})

	t.Run("underscore separators work too", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewDefaultFallback("en_US")
		require.Equal(t,
			[]i18n.Locale{"de_CH", "de", "en_US", "en"},
			s.Chain("de_CH"))
	})

	t.Run("first element is the requested locale", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewDefaultFallback("en")
		for _, locale := range []i18n.Locale{"de", "de-CH", "en", "pt-BR", "zh-Hans-CN"} {
			chain := s.Chain(locale)
			require.NotEmpty(t, chain)
			require.Equal(t, locale, chain[0])
		}
	})

	t.Run("no duplicates when requested overlaps default", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewDefaultFallback("en-US")
		require.Equal(t,
			[]i18n.Locale{"en", "en-US"},
			s.Chain("en"))
	})

	t.Run("requesting the default yields its expansion once", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewDefaultFallback("en-US")
		require.Equal(t,
			[]i18n.Locale{"en-US", "en"},
			s.Chain("en-US"))
	})
}

func TestStaticFallback(t *testing.T) {
	t.Parallel()

	t.Run("fixed list after the requested locale", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStaticFallback("fr", "en")
		require.Equal(t,
			[]i18n.Locale{"de", "fr", "en"},
			s.Chain("de"))
	})

	t.Run("requested locale is not repeated", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStaticFallback("fr", "en")
		require.Equal(t,
			[]i18n.Locale{"fr", "en"},
			s.Chain("fr"))
	})
}

func TestFallbackFunc(t *testing.T) {
	t.Parallel()

	s := i18n.FallbackFunc(func(l i18n.Locale) []i18n.Locale {
		return []i18n.Locale{l, "x"}
	})
	require.Equal(t, []i18n.Locale{"de", "x"}, s.Chain("de"))
}
