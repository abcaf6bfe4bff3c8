// Package field implements form fields for the admin panel.
//
// A field couples a display name and a record attribute with the metadata the
// UI component needs to render it. The only field shipped here is
// Translatable, which edits one attribute across every configured locale
// through a tabbed input.
//
// # Reading
//
// On render the host calls Resolve, which projects the record's translations
// onto {locale, attribute} and returns a locale-keyed Value. Locales without a
// translation row are absent from the result.
//
// # Writing
//
// On save the host calls Fill. The submitted value must be a mapping of locale
// code to text; anything else is skipped and reported as ValidationSkipped.
// Each pair is written through Record.TranslateOrNew, and the host persists
// the record afterwards.
//
// # Usage
//
//	title := field.NewTranslatable("Title", "", nil, cfg, l10n).
//	    SingleLine().
//	    IndexLocale("en")
//
//	value, err := title.Resolve(post)
//	outcome, err := title.Fill(req, post)
package field
