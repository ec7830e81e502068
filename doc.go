// Package i18n implements late translation: application code constructs
// immutable messages carrying a translation id and bound arguments, and
// only display-time code resolves them to localized text.
//
// Back-end code never touches a locale. It binds data:
//
//	msg, err := i18n.Bind("mail.inbox", i18n.Named("name", user), 42)
//
// Display-time code renders, passing the locale explicitly:
//
//	text, err := translator.Render(ctx, msg, "de-CH")
//
// # Messages
//
// Bind captures arguments at construction time and freezes them. Plain
// values get positional keys "0".."n-1"; Named attaches a name; Opt pairs a
// value with formatter options:
//
//	i18n.Bind("cart.total",
//		i18n.Named("count", i18n.Opt(1234567, i18n.FormatterOptions{i18n.OptGrouping: true})),
//	)
//
// Positional and named keys share one namespace, so a named argument "0"
// collides with the first positional argument and Bind fails with a
// DuplicateKeyError.
//
// Arguments may be other messages. Rendering recurses with the same winning
// locale, which is what lets translated fragments compose:
//
//	title := i18n.MustBind("rank.captain")
//	greeting := i18n.MustBind("greeting", i18n.Named("name", title))
//
// # Resolution
//
// A Translator connects a Provider (source of raw patterns), a
// FallbackStrategy (which locales to try, in order) and a Registry
// (formatter per argument type). Render walks the fallback chain until a
// provider yields a pattern, then substitutes every referenced argument:
//
//	provider := i18n.NewStatic().
//		Add("greeting", "en", "Hello, {{name}}.").
//		Add("greeting", "it", "Ciao, {{name}}.")
//
//	tr, err := i18n.NewTranslator(provider, i18n.WithDefaultLocale("en-US"))
//	text, err := tr.Render(ctx, greeting, "it")
//
// Patterns reference arguments as {{name}} or {{0}}. A pattern referencing
// an unbound key fails with ArgumentNotFoundError; a missing translation
// fails with MissingTranslationError carrying the originally requested
// locale. Nothing fails silently, so gap reports stay trustworthy. Display
// code that must not fail uses RenderOrID, which degrades to the raw id.
//
// # Definitions
//
// A Catalog declares ids with their argument schema once and gives report
// tooling a full inventory of producible messages:
//
//	var messages = i18n.NewCatalog()
//	var Greeting = messages.MustDefine("greeting", i18n.Typed[string]("name"))
//
//	msg := Greeting.MustBind("Ada")
//
// # Concurrency
//
// Messages are immutable values. A Translator is immutable after
// construction; concurrent Render calls need no coordination as long as
// the provider and custom formatters tolerate concurrent reads, which the
// resolver guarantees by never writing to either.
//
// Providers that load from files, Postgres, or a cache live in the
// providers subpackages; the core performs no I/O of its own.
package i18n
