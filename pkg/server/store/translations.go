package store

import "errors"

// ErrTranslationNotFound is returned when a record has no translation for a locale
var ErrTranslationNotFound = errors.New("translation not found")

// TranslationTable names the table holding one row per (owner, locale)
type TranslationTable struct {
	// Name is the table name, e.g. post_translations
	Name string
	// ForeignKey is the column referencing the owning record, e.g. post_id
	ForeignKey string
	// LocaleKey is the column holding the row's locale
	LocaleKey string
}

// TranslationRow is one attribute of one translation row
type TranslationRow struct {
	Locale string
	Value  string
}

// Translation is a full translation row
type Translation struct {
	OwnerID string
	Locale  string
	Values  map[string]string
}

// TranslationChange is a pending write of one translation row
type TranslationChange struct {
	Locale string
	// Exists is true when the row is already stored and must be updated
	Exists bool
	Values map[string]string
}

// TranslationsStore abstracts access to a translations table
type TranslationsStore interface {
	// ListTranslations projects every translation of the owner onto its
	// locale and the given attribute.
	ListTranslations(ownerID string, attribute string) ([]TranslationRow, error)

	// FindTranslation returns the owner's translation for locale.
	// Returns ErrTranslationNotFound if there is none.
	FindTranslation(ownerID string, locale string) (*Translation, error)

	// SaveTranslations inserts or updates the given rows in one transaction.
	SaveTranslations(ownerID string, changes []TranslationChange) error

	// OwnerExists reports whether the owner has any translation row.
	OwnerExists(ownerID string) (bool, error)
}
