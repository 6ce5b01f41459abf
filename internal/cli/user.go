package cli

import (
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/lease_management_app/pkg/database"
	"github.com/spf13/cobra"
)

// bootstrapActor creates users from the command line, where there is no
// signed-in administrator yet.
var bootstrapActor = domain.Actor{UserID: "leasectl", Role: domain.RoleAdmin}

func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage back office users",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var req dto.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user directly in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.UserRole(req.Role).IsValid() {
				return fmt.Errorf("unknown role %q (want ADMIN, DATA_ENTRY or MANAGEMENT)", req.Role)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := cmd.Context()
			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			repos := pgsql.NewRepositoryProvider(pool)
			user, err := services.NewUserService(repos.UserRepo).CreateUser(ctx, req, bootstrapActor)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s) with role %s\n", user.Username, user.UserID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&req.Role, "role", string(domain.RoleAdmin), "ADMIN, DATA_ENTRY or MANAGEMENT")
	cmd.Flags().StringVar(&req.Password, "password", "", "Initial password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
