package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// AddTenantCmd stores a tenant. With --migrate the tenant database is
// migrated right away.
func AddTenantCmd(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	connectionString, _ := cmd.Flags().GetString("connection-string")
	inactive, _ := cmd.Flags().GetBool("inactive")
	migrate, _ := cmd.Flags().GetBool("migrate")

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	tenant := &tenancy.Tenant{Name: name, ConnectionString: connectionString, IsActive: !inactive}
	if err := env.tenants.Create(cmd.Context(), tenant); err != nil {
		return err
	}
	env.logger.Info("Created tenant ", tenant.Name, " with id ", tenant.ID)

	if !migrate {
		return nil
	}
	db, err := env.connections.DB(tenantContext(tenant))
	if err != nil {
		return err
	}
	return persistence.MigrateTenant(db)
}

// ListTenantsCmd prints the stored tenants.
func ListTenantsCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	list, err := env.tenants.List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACTIVE\tOWN DATABASE")
	for _, t := range list {
		fmt.Fprintf(w, "%d\t%s\t%t\t%t\n", t.ID, t.Name, t.IsActive, t.ConnectionString != "")
	}
	return w.Flush()
}

// InitTenantCommands registers the tenant command group.
func InitTenantCommands(rootCmd *cobra.Command) error {
	tenantCmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tenant",
		RunE:  AddTenantCmd,
	}
	addCmd.Flags().String("name", "", "Unique tenant name")
	addCmd.Flags().String("connection-string", "", "Connection string of the tenant database (separate and hybrid strategies)")
	addCmd.Flags().Bool("inactive", false, "Create the tenant deactivated")
	addCmd.Flags().Bool("migrate", false, "Migrate the tenant database after creating the tenant")
	if err := addCmd.MarkFlagRequired("name"); err != nil {
		return err
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE:  ListTenantsCmd,
	}

	tenantCmd.AddCommand(addCmd, listCmd)
	rootCmd.AddCommand(tenantCmd)
	return nil
}
