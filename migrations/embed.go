// Package migrations holds the versioned PostgreSQL schema, embedded so the
// server binary and tests can migrate without a migrations directory on disk.
package migrations

import "embed"

// FS contains every NNNNNN_name.{up,down}.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
