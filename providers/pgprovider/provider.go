package pgprovider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pdark/i18n"
)

const defaultTable = "i18n_messages"

// Provider reads translation patterns from PostgreSQL. It is safe for
// concurrent use; the pool handles connection management.
type Provider struct {
	pool  *pgxpool.Pool
	table string
}

// Option configures a Provider.
type Option func(*Provider)

// WithTable overrides the table name, for installations that share a
// schema with other tenants.
func WithTable(name string) Option {
	return func(p *Provider) {
		if name != "" {
			p.table = name
		}
	}
}

// New creates a provider backed by the given pool.
func New(pool *pgxpool.Pool, opts ...Option) *Provider {
	p := &Provider{pool: pool, table: defaultTable}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookup implements i18n.Provider. A missing row is not an error.
func (p *Provider) Lookup(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
	query := fmt.Sprintf("SELECT pattern FROM %s WHERE id = $1 AND locale = $2", p.table)

	var pattern string
	err := p.pool.QueryRow(ctx, query, id, string(locale)).Scan(&pattern)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pgprovider: lookup %q in %q: %w", id, locale, err)
	}
	return pattern, true, nil
}

// Upsert stores a pattern, replacing any previous one for (id, locale).
func (p *Provider) Upsert(ctx context.Context, id string, locale i18n.Locale, pattern string) error {
	if id == "" {
		return i18n.ErrEmptyID
	}
	if locale == "" {
		return i18n.ErrEmptyLocale
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, locale, pattern) VALUES ($1, $2, $3)
		ON CONFLICT (id, locale) DO UPDATE SET pattern = EXCLUDED.pattern`, p.table)

	if _, err := p.pool.Exec(ctx, query, id, string(locale), pattern); err != nil {
		return fmt.Errorf("pgprovider: upsert %q in %q: %w", id, locale, err)
	}
	return nil
}

// Delete removes a pattern. Deleting a missing row is not an error.
func (p *Provider) Delete(ctx context.Context, id string, locale i18n.Locale) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND locale = $2", p.table)
	if _, err := p.pool.Exec(ctx, query, id, string(locale)); err != nil {
		return fmt.Errorf("pgprovider: delete %q in %q: %w", id, locale, err)
	}
	return nil
}

// IDs returns every translation id stored for a locale, sorted.
func (p *Provider) IDs(ctx context.Context, locale i18n.Locale) ([]string, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE locale = $1 ORDER BY id", p.table)

	rows, err := p.pool.Query(ctx, query, string(locale))
	if err != nil {
		return nil, fmt.Errorf("pgprovider: list ids for %q: %w", locale, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Locales returns every locale with at least one stored pattern, sorted.
func (p *Provider) Locales(ctx context.Context) ([]i18n.Locale, error) {
	query := fmt.Sprintf("SELECT DISTINCT locale FROM %s ORDER BY locale", p.table)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgprovider: list locales: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[i18n.Locale])
}
