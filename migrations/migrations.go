// Package migrations embeds the SQL schema so the application can
// initialize the database at startup without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
