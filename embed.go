// Package root exposes files embedded at the repository root, such as SQL
// migrations, so they can be consumed by the CLI regardless of working
// directory.
package root

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
