// Package config provides configuration management for translatable fields.
//
// This package handles loading and validating the locale configuration and
// the resource definitions served by the admin API.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Configuration file: $TRANSLATABLE_CONFIG_PATH/translatable.yml
//   - Environment variables (take precedence over the file)
//
// # Key Configuration Options
//
//   - TRANSLATABLE_LOCALES: Comma-separated locale codes, in display order
//   - TRANSLATABLE_LOCALE_KEY: Column holding a translation's locale (default "locale")
//   - TRANSLATABLE_APP_LOCALE: Default UI locale (default "en")
//
// Labels and resources can only be set in the file:
//
//	locales: [en, fr, de]
//	labels:
//	  de: Deutsch
//	resources:
//	  - name: posts
//	    translations_table: post_translations
//	    foreign_key: post_id
//	    fields:
//	      - name: Title
//	        single_line: true
//	      - name: Body
//	        rich: true
package config
