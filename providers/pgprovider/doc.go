// Package pgprovider serves translation patterns from PostgreSQL through
// the i18n.Provider contract.
//
// Patterns live in a single table keyed by (id, locale), created by the
// embedded migration:
//
//	CREATE TABLE i18n_messages (
//	    id      TEXT NOT NULL,
//	    locale  TEXT NOT NULL,
//	    pattern TEXT NOT NULL,
//	    PRIMARY KEY (id, locale)
//	)
//
// Typical wiring:
//
//	pool, err := pgprovider.Connect(ctx, cfg)
//	// handle err
//	if err := pgprovider.Migrate(ctx, pool, logger); err != nil {
//	    // handle err
//	}
//	provider := pgprovider.New(pool)
//	translator, err := i18n.NewTranslator(provider)
//
// Every lookup hits the database; wrap the provider with cachedprovider
// when render volume matters.
package pgprovider
