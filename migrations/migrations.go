// Package migrations embeds the versioned schema files applied by matchctl.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
