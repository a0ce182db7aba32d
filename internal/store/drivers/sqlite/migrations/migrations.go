// Package migrations embeds the sqlite schema migration files so the
// binary can bootstrap its own database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
