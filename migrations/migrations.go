// Package migrations embeds the SQL migrations applied to the blog's database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
