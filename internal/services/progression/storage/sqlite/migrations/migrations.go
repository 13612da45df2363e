// Package migrations embeds the progression schema migration files.
package migrations

import "embed"

// FS bundles the SQL migrations applied at store open.
//
//go:embed progression/*.sql
var FS embed.FS
