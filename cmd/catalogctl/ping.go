package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/chrono_catalog/internal/repo/postgres"
)

func newPingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Connect to the database and print its current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := resolveDSN(cmd)
			if err != nil {
				return err
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")

			pool, err := postgres.NewPool(cmd.Context(), postgres.PoolConfig{DSN: dsn, MaxConns: 1, ConnectTimeout: timeout})
			if err != nil {
				return err
			}
			defer pool.Close()

			now, err := postgres.NewWatchRepository(pool, timeout).Now(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("database time: %s\n", now.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 10*time.Second, "connect and query timeout")
	return cmd
}
