// Package breachwatch exposes embedded assets shared by the CLI commands.
package breachwatch

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
