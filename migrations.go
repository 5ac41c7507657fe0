// Package emailrep holds assets shared by every binary of the service.
package emailrep

import "embed"

// Migrations contains the goose SQL migrations for the verdict tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
