package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID            = errors.New("i18n: translation id cannot be empty")
	ErrEmptyKey           = errors.New("i18n: argument key cannot be empty")
	ErrEmptyLocale        = errors.New("i18n: locale cannot be empty")
	ErrNilProvider        = errors.New("i18n: provider cannot be nil")
	ErrDuplicateKey       = errors.New("i18n: duplicate argument key")
	ErrArgumentNotFound   = errors.New("i18n: argument not found")
	ErrNoFormatter        = errors.New("i18n: no formatter registered")
	ErrMissingTranslation = errors.New("i18n: missing translation")
	ErrRedefined          = errors.New("i18n: message already defined")
	ErrArityMismatch      = errors.New("i18n: wrong number of arguments")
	ErrParamType          = errors.New("i18n: argument type mismatch")
)

// DuplicateKeyError reports two arguments claiming the same key within one
// message. Positional and named keys share a single namespace, so a named
// argument "0" collides with the first positional argument.
type DuplicateKeyError struct {
	ID  string
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("i18n: duplicate argument key %q in message %q", e.Key, e.ID)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// ArgumentNotFoundError reports a pattern or caller referencing an argument
// key the message does not carry.
type ArgumentNotFoundError struct {
	ID  string
	Key string
}

func (e *ArgumentNotFoundError) Error() string {
	return fmt.Sprintf("i18n: argument %q not found in message %q", e.Key, e.ID)
}

func (e *ArgumentNotFoundError) Is(target error) bool { return target == ErrArgumentNotFound }

// NoFormatterError reports that no registered formatter matches an argument's
// runtime type and no default formatter is installed.
type NoFormatterError struct {
	Type string
}

func (e *NoFormatterError) Error() string {
	return fmt.Sprintf("i18n: no formatter registered for type %s", e.Type)
}

func (e *NoFormatterError) Is(target error) bool { return target == ErrNoFormatter }

// MissingTranslationError reports that no provider produced a pattern for the
// id across the whole fallback chain. Locale is the originally requested
// locale, not the fallback candidates, so reports point at the real gap.
type MissingTranslationError struct {
	ID     string
	Locale Locale
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("i18n: missing translation for %q in locale %q", e.ID, e.Locale)
}

func (e *MissingTranslationError) Is(target error) bool { return target == ErrMissingTranslation }
