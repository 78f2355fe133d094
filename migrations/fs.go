// Package migrations embeds the versioned SQL schema migrations for every
// supported database dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
