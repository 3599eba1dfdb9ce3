package migrations

import "embed"

// Files Встроенные SQL-миграции, применяются при старте приложения.
//
//go:embed *.sql
var Files embed.FS
