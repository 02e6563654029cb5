package commands

import (
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd migrates the default database and, with --tenant, the
// database of that tenant.
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	env.logger.Info("Default database migrated")

	tenantName, err := cmd.Flags().GetString("tenant")
	if err != nil {
		return err
	}
	if tenantName == "" {
		return nil
	}

	ctx := cmd.Context()
	tenant, err := env.tenants.GetByName(ctx, tenantName)
	if err != nil {
		return err
	}

	db, err := env.connections.DB(tenantContext(tenant))
	if err != nil {
		return err
	}
	if err := persistence.MigrateTenant(db); err != nil {
		return fmt.Errorf("tenant %s: %w", tenant.Name, err)
	}

	env.logger.Info("Database of tenant ", tenant.Name, " migrated")
	return nil
}

// InitMigrateCommands registers the migrate command.
func InitMigrateCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  MigrateCmd,
	}
	migrateCmd.Flags().String("tenant", "", "Also migrate the database of this tenant")
	rootCmd.AddCommand(migrateCmd)
	return nil
}
