// Package migrations embebe el esquema SQL versionado que aplica goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
