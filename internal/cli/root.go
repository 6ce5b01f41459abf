// Package cli implements the leasectl operator commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the leasectl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leasectl",
		Short:         "Operator tooling for the lease management backend",
		Long:          "leasectl runs schema migrations, bootstraps users and previews rent schedules for lease terms.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(UserCmd())
	rootCmd.AddCommand(RentCmd())

	return rootCmd
}
