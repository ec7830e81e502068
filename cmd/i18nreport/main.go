// Command i18nreport audits a file-based translation catalog for gaps.
//
// It loads every translation file under -dir, takes the -base locale's ids
// as the complete inventory, and reports each (id, locale) pair that other
// locales are missing. The exit code is 1 when gaps exist, so the command
// can gate CI.
//
//	i18nreport -dir ./translations -base en
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/pdark/i18n"
	"github.com/pdark/i18n/providers/fileprovider"
)

func main() {
	dir := flag.String("dir", "translations", "directory with per-locale translation files")
	base := flag.String("base", string(i18n.DefaultLocale), "locale whose ids define the full inventory")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	gaps, err := run(context.Background(), *dir, i18n.Locale(*base))
	if err != nil {
		log.Error("audit failed", slog.Any("error", err))
		os.Exit(2)
	}

	if len(gaps) == 0 {
		fmt.Println("no missing translations")
		return
	}

	for _, gap := range gaps {
		fmt.Printf("%s\t%s\n", gap.Locale, gap.ID)
	}
	fmt.Fprintf(os.Stderr, "%d missing translations\n", len(gaps))
	os.Exit(1)
}

func run(ctx context.Context, dir string, base i18n.Locale) ([]i18n.Missing, error) {
	provider, err := fileprovider.New(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", dir, err)
	}

	ids := provider.IDs(base)
	if len(ids) == 0 {
		return nil, fmt.Errorf("base locale %q has no translations in %q", base, dir)
	}

	locales := slices.DeleteFunc(provider.Locales(), func(l i18n.Locale) bool {
		return l == base
	})

	return i18n.AuditMissing(ctx, provider, ids, locales...)
}
