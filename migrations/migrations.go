// Package migrations содержит встроенные SQL миграции для goose
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
