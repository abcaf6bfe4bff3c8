// Package localization labels locale codes for the admin UI and negotiates
// the UI locale of a request.
//
// Providers satisfy field.Localizer. Display uses the CLDR language names
// shipped with golang.org/x/text, so "fr" labels as "French" for an English
// UI and as "français" for a French one. Static serves fixed labels, which is
// handy in tests.
//
//	l10n := localization.NewDisplay("en", map[string]string{"pt-BR": "Português (Brasil)"})
//	l10n.Translate("de") // "German"
package localization
