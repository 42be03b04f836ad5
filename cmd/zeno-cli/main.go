// Package main is the entry point for the zeno-cli application.
// It registers the tenant, user and catalog administration sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	commands "github.com/DudssFnx/zeno-ecommerce-sub004/cmd/zeno-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "zeno-cli",
		Short: "Store administration CLI tool",
		Long: `zeno-cli is a command-line tool for administering the storefront platform.
It creates tenants and back-office users, runs schema migrations and seeds
demo catalog data for local development.

Database access is configured through the same environment variables the API
uses: ZENO_DB_TYPE, ZENO_DB_DSN and ZENO_DB_NAME.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTenantCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize tenant commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitCatalogCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize catalog commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
