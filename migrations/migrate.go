package migrations

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

// Commands — поддерживаемые команды goose.
var Commands = []string{"up", "down", "status", "version"}

// Open — database/sql поверх pgx для goose.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// Run — выполняет команду goose над встроенными миграциями.
func Run(ctx context.Context, db *sql.DB, command string) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if !supported(command) {
		return fmt.Errorf("unsupported migrate command %q", command)
	}
	if err := goose.RunContext(ctx, command, db, "."); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

func supported(command string) bool {
	for _, c := range Commands {
		if c == command {
			return true
		}
	}
	return false
}
