// Package main is the entry point for the dnt-cli application.
// It registers the maintenance sub-commands (migrate, tenant, user, keys,
// protect, unprotect) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/cmd/dnt-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "dnt-cli",
		Short: "Maintenance CLI for the DNT API",
		Long: `dnt-cli migrates databases, manages tenants and users, generates the RSA
key pair used to sign access tokens and protects or unprotects values with
the data protection key ring.

Every command reads the same configuration file as the API (--config or
CONFIG_PATH), including DNT_ environment overrides.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath(), "Path to the configuration file")

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "./configs/app.yaml"
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
