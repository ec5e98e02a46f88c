// Package skychart holds assets embedded into the binary.
package skychart

import (
	"embed"
	"io/fs"
)

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsFS returns Migrations rooted at the migrations directory.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		panic(err)
	}

	return sub
}
