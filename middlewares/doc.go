// Package middlewares provides net/http middleware for locale resolution.
// The handlers use the standard func(http.Handler) http.Handler shape, so
// they compose with chi and any other stdlib-compatible router.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(available))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    locale := middlewares.LocaleFromContext(r.Context())
//	    text := translator.RenderOrID(r.Context(), msg, locale)
//	    ...
//	})
package middlewares
