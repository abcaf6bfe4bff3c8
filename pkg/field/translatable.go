package field

import (
	"fmt"
	"sort"
)

// TranslatableComponent is the UI component rendering translatable fields.
const TranslatableComponent = "nova-translation"

// Config is the configuration a translatable field reads on construction.
type Config struct {
	// Locales are the configured locale codes in display order
	Locales []string

	// LocaleKey is the column identifying a translation row's locale
	LocaleKey string
}

// Localizer resolves locale labels and the current UI locale.
type Localizer interface {
	Translate(code string) string
	CurrentLocale() string
}

// Translatable edits one attribute of a record in every configured locale.
type Translatable struct {
	Field
	options Options
}

// NewTranslatable creates a translatable field labelled by the localizer for
// every configured locale.
func NewTranslatable(name, attribute string, resolve ResolveFunc, cfg Config, l10n Localizer) *Translatable {
	base := NewField(name, attribute, resolve)
	base.Component = TranslatableComponent

	locales := LocaleSet{}
	for _, code := range cfg.Locales {
		locales = locales.With(code, l10n.Translate(code))
	}

	return &Translatable{
		Field: base,
		options: Options{
			Locales:     locales,
			IndexLocale: l10n.CurrentLocale(),
		},
	}
}

// Locales replaces the locales the field edits. A repeated code keeps its
// first position and takes the later label.
func (t *Translatable) Locales(set LocaleSet) *Translatable {
	out := LocaleSet{}
	for _, l := range set {
		out = out.With(l.Code, l.Label)
	}
	t.options.Locales = out
	return t
}

// IndexLocale sets the locale displayed on index views.
func (t *Translatable) IndexLocale(code string) *Translatable {
	t.options.IndexLocale = code
	return t
}

// SingleLine renders the field as a single-line text input.
func (t *Translatable) SingleLine() *Translatable {
	t.options.SingleLine = true
	return t
}

// Rich renders the field with a rich-text editor.
func (t *Translatable) Rich() *Translatable {
	t.options.Rich = true
	return t
}

// Meta returns a copy of the field's metadata.
func (t *Translatable) Meta() Options {
	meta := t.options
	meta.Locales = append(LocaleSet{}, t.options.Locales...)
	return meta
}

// Resolve reads the field's value from record, passing it through the
// resolve callback when one is set.
func (t *Translatable) Resolve(record Record) (Value, error) {
	value, err := t.ResolveAttribute(record, t.Attribute)
	if err != nil {
		return nil, err
	}
	if t.resolveCallback != nil {
		value = t.resolveCallback(value, record, t.Attribute)
	}
	return value, nil
}

// ResolveAttribute builds the locale-keyed value of attribute from the
// record's translations. Locales without a translation are absent.
func (t *Translatable) ResolveAttribute(record Record, attribute string) (Value, error) {
	rows, err := record.Translations(attribute)
	if err != nil {
		return nil, err
	}

	results := make(Value, len(rows))
	for _, row := range rows {
		results[row.Locale] = row.Value
	}
	return results, nil
}

// Fill writes the submitted value of the field onto record.
func (t *Translatable) Fill(req Request, record Record) (FillOutcome, error) {
	return t.FillAttributeFromRequest(req, t.Attribute, record, t.Attribute)
}

// FillAttributeFromRequest sets attribute on the record's translation for
// every locale submitted under requestAttribute. A submitted value that is not
// a locale mapping writes nothing and yields ValidationSkipped. On error the
// outcome is Unfilled and translations set before the failure stay on the
// record unsaved.
func (t *Translatable) FillAttributeFromRequest(req Request, requestAttribute string, record Record, attribute string) (FillOutcome, error) {
	raw, _ := req.Input(requestAttribute)
	values, ok := asMapping(raw)
	if !ok {
		return ValidationSkipped, nil
	}

	locales := make([]string, 0, len(values))
	for locale := range values {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		translation, err := record.TranslateOrNew(locale)
		if err != nil {
			return Unfilled, fmt.Errorf("translation %q of %s: %w", locale, attribute, err)
		}
		translation.SetAttribute(attribute, values[locale])
	}
	return Filled, nil
}

// MarshalJSON encodes the field descriptor without a value.
func (t *Translatable) MarshalJSON() ([]byte, error) {
	return marshalDescriptor(t.descriptor(nil, t.options))
}

// Serialized is a field descriptor carrying a resolved value.
type Serialized struct {
	field *Translatable
	value Value
}

// WithValue pairs the field with a resolved value for serialization.
func (t *Translatable) WithValue(value Value) Serialized {
	return Serialized{field: t, value: value}
}

// MarshalJSON encodes the field descriptor with its value.
func (s Serialized) MarshalJSON() ([]byte, error) {
	return marshalDescriptor(s.field.descriptor(s.value, s.field.options))
}
