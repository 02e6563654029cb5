package commands

import (
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/app"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/cryptography"

	"github.com/spf13/cobra"
)

// AddUserCmd registers a user, optionally inside a tenant.
func AddUserCmd(cmd *cobra.Command, _ []string) error {
	userName, _ := cmd.Flags().GetString("user-name")
	displayName, _ := cmd.Flags().GetString("display-name")
	password, _ := cmd.Flags().GetString("password")
	tenantName, _ := cmd.Flags().GetString("tenant")
	permissions, _ := cmd.Flags().GetStringSlice("permissions")
	roles, _ := cmd.Flags().GetStringSlice("roles")

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	var tenant *tenancy.Tenant
	if tenantName != "" {
		if tenant, err = env.tenants.GetByName(cmd.Context(), tenantName); err != nil {
			return err
		}
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(env.logger)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenManager(env.cfg.Jwt, rsaProcessor)
	if err != nil {
		return err
	}
	accountService, err := app.NewAccountService(env.uows, tokens, env.logger)
	if err != nil {
		return err
	}

	if displayName == "" {
		displayName = userName
	}
	user := &accounts.User{
		UserName:    userName,
		DisplayName: displayName,
		Permissions: permissions,
		Roles:       roles,
	}
	if err := accountService.Register(tenantContext(tenant), user, password); err != nil {
		return err
	}

	env.logger.Info("Created user ", user.UserName, " with id ", user.ID)
	return nil
}

// InitUserCommands registers the user command group.
func InitUserCommands(rootCmd *cobra.Command) error {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		RunE:  AddUserCmd,
	}
	addCmd.Flags().String("user-name", "", "Unique user name")
	addCmd.Flags().String("display-name", "", "Display name, defaults to the user name")
	addCmd.Flags().String("password", "", "Password")
	addCmd.Flags().String("tenant", "", "Tenant the user belongs to")
	addCmd.Flags().StringSlice("permissions", nil, "Granted permissions, e.g. tasks.view,tasks.create")
	addCmd.Flags().StringSlice("roles", nil, "Roles")
	for _, name := range []string{"user-name", "password"} {
		if err := addCmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}

	userCmd.AddCommand(addCmd)
	rootCmd.AddCommand(userCmd)
	return nil
}
