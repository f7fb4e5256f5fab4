// Package migrations embeds the SQL files that create the videos table.
package migrations

import "embed"

// FS contains the numbered up and down migrations, applied in order.
//
//go:embed *.sql
var FS embed.FS
