// Package migrations embeds the Postgres schema migrations.
package migrations

import "embed"

// FS holds the numbered up/down SQL files at its root.
//
//go:embed *.sql
var FS embed.FS

// Dir is the directory inside FS that holds the migrations.
const Dir = "."
