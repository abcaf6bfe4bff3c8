// Package db embeds the SQL migrations of the example schema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
