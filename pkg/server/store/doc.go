// Package store provides storage abstractions for the admin API.
//
// This package defines interfaces for database operations, allowing the
// endpoints and records to be decoupled from the specific database
// implementation. This enables easier testing with mocks.
//
// # Available Stores
//
//   - TranslationsStore: Per-locale translation rows of a resource
//   - HealthStore: Database connectivity checks
//
// # Usage
//
//	translations := gorm.NewTranslationsStore(db, store.TranslationTable{
//	    Name:       "post_translations",
//	    ForeignKey: "post_id",
//	    LocaleKey:  "locale",
//	})
//	tr, err := translations.FindTranslation("42", "fr")
//	if err != nil {
//	    if errors.Is(err, store.ErrTranslationNotFound) {
//	        // Handle not found
//	    }
//	}
package store
