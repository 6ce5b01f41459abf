package cli

import (
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/pkg/database"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(migrateDirectionCmd(database.MigrateUp, "Apply all pending migrations"))
	cmd.AddCommand(migrateDirectionCmd(database.MigrateDown, "Roll back the most recent migration"))
	return cmd
}

func migrateDirectionCmd(direction database.MigrationDirection, short string) *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:   string(direction),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is not set")
			}
			if migrationsPath == "" {
				migrationsPath = cfg.MigrationsPath
			}

			changed, err := database.RunMigrations(cfg.DatabaseURL, migrationsPath, direction)
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s applied\n", direction)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No migrations to apply")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&migrationsPath, "path", "", "Migrations source URL (defaults to MIGRATIONS_PATH)")
	return cmd
}
