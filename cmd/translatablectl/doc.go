// Command translatablectl runs the admin API for translatable fields.
//
// The API lets an operator read and write a record's text attributes in
// every configured locale. Each locale's text lives in its own row of a
// translations table; rows are created on first write and never deleted.
//
// # Quick Start
//
//	# Run database migrations
//	translatablectl db migrate
//
//	# Inspect the configuration
//	translatablectl configuration show
//
//	# Start the server and follow config file changes
//	translatablectl server --watch-config
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - TRANSLATABLE_CONFIG_PATH: Directory holding translatable.yml
//   - TRANSLATABLE_LOCALES: Comma-separated locale codes
//   - TRANSLATABLE_LOCALE_KEY: Locale column of translation tables
//   - TRANSLATABLE_APP_LOCALE: Default UI locale
//   - TRANSLATABLE_LOG_LEVEL: Set to "debug" for SQL query logging
//   - PORT: Server port (default: 8000)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
package main
