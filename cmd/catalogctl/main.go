package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/chrono_catalog/config"
)

// CLI обслуживания каталога: миграции и проверка подключения к БД.
func main() {
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Chrono catalog maintenance: migrations and database checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("dsn", "", "Postgres DSN (default: CATALOG_POSTGRES_DSN)")

	root.AddCommand(newMigrateCmd(), newPingCmd())
	return root
}

// resolveDSN — флаг --dsn важнее окружения.
func resolveDSN(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("dsn"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.Postgres.DSN, nil
}
