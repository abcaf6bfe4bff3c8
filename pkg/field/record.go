package field

// TranslationRow is one translation of an attribute as read from storage.
type TranslationRow struct {
	Locale string
	Value  string
}

// Translation is a mutable handle on one locale's translation of a record.
type Translation interface {
	SetAttribute(attribute, value string)
}

// Record is the capability a record needs to be edited by a Translatable
// field.
type Record interface {
	// Translations projects every translation row of the record onto its
	// locale key and the given attribute.
	Translations(attribute string) ([]TranslationRow, error)

	// TranslateOrNew returns the translation for locale, creating an unsaved
	// one when none exists yet.
	TranslateOrNew(locale string) (Translation, error)
}

// Value is a resolved multi-language value keyed by locale code.
type Value map[string]string
