// A minimal web server showing the full wiring: embedded translation
// files, a translator with default formatters, and chi with the locale
// middleware.
//
//	go run ./example
//	curl -H 'Accept-Language: de' localhost:8080/
package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pdark/i18n"
	"github.com/pdark/i18n/middlewares"
	"github.com/pdark/i18n/providers/fileprovider"
)

//go:embed translations
var translationsFS embed.FS

var (
	catalog = i18n.NewCatalog()

	msgWelcome = catalog.MustDefine("common.welcome", i18n.Typed[string]("name"))
	msgVisits  = catalog.MustDefine("common.visits", i18n.Typed[int]("count"))
	msgToday   = catalog.MustDefine("common.today", i18n.Typed[time.Time]("date"))
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sub, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		log.Error("loading translations", slog.Any("error", err))
		os.Exit(1)
	}
	provider, err := fileprovider.New(sub)
	if err != nil {
		log.Error("loading translations", slog.Any("error", err))
		os.Exit(1)
	}

	translator, err := i18n.NewTranslator(provider, i18n.WithLogger(log))
	if err != nil {
		log.Error("building translator", slog.Any("error", err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middlewares.Locale(provider.Locales()))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		locale := middlewares.LocaleFromContext(ctx)

		lines := []i18n.Message{
			msgWelcome.MustBind("visitor"),
			msgVisits.MustBind(i18n.Opt(1234567, i18n.FormatterOptions{i18n.OptGrouping: true})),
			msgToday.MustBind(i18n.Opt(time.Now(), i18n.FormatterOptions{i18n.OptStyle: "long"})),
		}
		for _, m := range lines {
			w.Write([]byte(translator.RenderOrID(ctx, m, locale) + "\n"))
		}
	})

	log.Info("listening", slog.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
