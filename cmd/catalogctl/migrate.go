package main

import (
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/chrono_catalog/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(migrations.Commands, "|") + "]",
		Short:     "Apply or inspect the embedded schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrations.Commands,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := resolveDSN(cmd)
			if err != nil {
				return err
			}

			db, err := migrations.Open(dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			goose.SetLogger(stdLogger{cmd})
			return migrations.Run(cmd.Context(), db, args[0])
		},
	}
}

// stdLogger — вывод goose в stdout команды.
type stdLogger struct{ cmd *cobra.Command }

func (l stdLogger) Fatalf(format string, v ...interface{}) { l.cmd.PrintErrf(withNewline(format), v...) }
func (l stdLogger) Printf(format string, v ...interface{}) { l.cmd.Printf(withNewline(format), v...) }

func withNewline(format string) string {
	if strings.HasSuffix(format, "\n") {
		return format
	}
	return format + "\n"
}
