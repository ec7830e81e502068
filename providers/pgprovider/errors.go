package pgprovider

import "errors"

var (
	ErrParseConfig     = errors.New("pgprovider: failed to parse connection config")
	ErrConnect         = errors.New("pgprovider: failed to open connection")
	ErrSetDialect      = errors.New("pgprovider: failed to set migration dialect")
	ErrApplyMigrations = errors.New("pgprovider: failed to apply migrations")
)
