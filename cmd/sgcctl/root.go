package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/adapters/storage/jsonfile"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/platform/config"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "sgcctl",
	Short: "Admin CLI for the management backend",
	Long: `sgcctl works directly on the backend's JSON data directory: seeding the
default admin user and category registries, printing financial reports in the
terminal and exporting them to disk.

Do not run sgcctl against a data directory the server is writing to.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given base context and exits
// non-zero on failure. Commands reach the context through cmd.Context().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: DATA_DIR from the environment)")
}

// openServices loads configuration and assembles the service container over
// the configured data directory.
func openServices() (*portssvc.ServiceContainer, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	store, err := jsonfile.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	repos := jsonfile.NewRepositoryProvider(store)
	return services.NewServiceContainer(cfg, repos), cfg, nil
}
