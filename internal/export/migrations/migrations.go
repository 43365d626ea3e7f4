// Package migrations embeds the goose migrations for the export schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
