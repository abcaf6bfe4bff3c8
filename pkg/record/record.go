package record

import (
	"errors"
	"sort"

	"github.com/doodlesbykumbi/translatable/pkg/field"
	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

var _ field.Record = (*Record)(nil)
var _ field.Translation = (*Translation)(nil)

// Translation is one locale's translation of a record
type Translation struct {
	locale string
	exists bool
	values map[string]string
	dirty  map[string]string
}

// Locale returns the translation's locale code
func (t *Translation) Locale() string {
	return t.locale
}

// Exists reports whether the translation has a stored row
func (t *Translation) Exists() bool {
	return t.exists
}

// SetAttribute sets an attribute; the change is stored on the next Save
func (t *Translation) SetAttribute(attribute, value string) {
	if t.dirty == nil {
		t.dirty = make(map[string]string)
	}
	t.dirty[attribute] = value
}

// Attribute returns the current value of an attribute, including unsaved changes
func (t *Translation) Attribute(attribute string) (string, bool) {
	if v, ok := t.dirty[attribute]; ok {
		return v, true
	}
	v, ok := t.values[attribute]
	return v, ok
}

// Record is the translatable side of one owner row
type Record struct {
	ownerID      string
	store        store.TranslationsStore
	translations map[string]*Translation
}

// New creates a record for the owner whose translations live in s
func New(ownerID string, s store.TranslationsStore) *Record {
	return &Record{
		ownerID:      ownerID,
		store:        s,
		translations: make(map[string]*Translation),
	}
}

// OwnerID returns the owner's primary key
func (r *Record) OwnerID() string {
	return r.ownerID
}

// Translations lists the stored value of attribute per locale
func (r *Record) Translations(attribute string) ([]field.TranslationRow, error) {
	rows, err := r.store.ListTranslations(r.ownerID, attribute)
	if err != nil {
		return nil, err
	}

	result := make([]field.TranslationRow, len(rows))
	for i, row := range rows {
		result[i] = field.TranslationRow{Locale: row.Locale, Value: row.Value}
	}
	return result, nil
}

// TranslateOrNew returns the translation for locale. A locale without a
// stored row gets a new translation that is created on Save.
func (r *Record) TranslateOrNew(locale string) (field.Translation, error) {
	if t, ok := r.translations[locale]; ok {
		return t, nil
	}

	t := &Translation{locale: locale, values: map[string]string{}}
	stored, err := r.store.FindTranslation(r.ownerID, locale)
	switch {
	case err == nil:
		t.exists = true
		t.values = stored.Values
	case errors.Is(err, store.ErrTranslationNotFound):
	default:
		return nil, err
	}

	r.translations[locale] = t
	return t, nil
}

// Dirty reports whether any translation has unsaved changes
func (r *Record) Dirty() bool {
	for _, t := range r.translations {
		if len(t.dirty) > 0 {
			return true
		}
	}
	return false
}

// Save stores every changed translation. Either all changes are stored or
// none are.
func (r *Record) Save() error {
	locales := make([]string, 0, len(r.translations))
	for locale, t := range r.translations {
		if len(t.dirty) > 0 {
			locales = append(locales, locale)
		}
	}
	if len(locales) == 0 {
		return nil
	}
	sort.Strings(locales)

	changes := make([]store.TranslationChange, 0, len(locales))
	for _, locale := range locales {
		t := r.translations[locale]
		values := make(map[string]string, len(t.dirty))
		for k, v := range t.dirty {
			values[k] = v
		}
		changes = append(changes, store.TranslationChange{
			Locale: locale,
			Exists: t.exists,
			Values: values,
		})
	}

	if err := r.store.SaveTranslations(r.ownerID, changes); err != nil {
		return err
	}

	for _, locale := range locales {
		t := r.translations[locale]
		if t.values == nil {
			t.values = make(map[string]string)
		}
		for k, v := range t.dirty {
			t.values[k] = v
		}
		t.dirty = nil
		t.exists = true
	}
	return nil
}
