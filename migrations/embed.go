// Package migrations — SQL-миграции каталога (goose), встроенные в бинарник.
package migrations

import "embed"

// FS — все *.sql файлы каталога migrations.
//
//go:embed *.sql
var FS embed.FS
