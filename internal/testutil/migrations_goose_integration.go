//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/Gunvolt24/chrono_catalog/migrations"
)

// ApplyMigrationsGoose — применяет встроенные миграции (схема + эталонные товары).
func ApplyMigrationsGoose(dsn string) error {
	goose.SetLogger(log.New(os.Stdout, "", 0))

	db, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.Run(context.Background(), db, "up")
}
