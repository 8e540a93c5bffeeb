package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/adapters/storage/memory"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/platform/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default admin user and category registries",
	Long: `Seed creates the default administrator account and the built-in payable
and receivable category registries in the configured data directory. Existing
records are left untouched, so seeding an already populated directory is a
no-op.

The admin account starts with the default credentials admin/admin123 and must
have its password changed on first login.`,
	Example: `  # Seed the configured data directory
  sgcctl seed

  # Show what a fresh seed produces without writing anything
  sgcctl seed --dry-run`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Bool("dry-run", false, "seed an in-memory copy and report, without writing")
}

func runSeed(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	var svcs *portssvc.ServiceContainer
	var target string
	if dryRun {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		svcs = services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
		target = "in-memory store (dry run)"
	} else {
		var cfg *config.Config
		var err error
		svcs, cfg, err = openServices()
		if err != nil {
			return err
		}
		target = cfg.DataDir
	}

	if err := svcs.User.EnsureAdminUser(ctx); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	if err := svcs.Category.EnsureDefaultCategories(ctx); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	payables, err := svcs.Category.ListCategories(ctx, domain.KindPayable)
	if err != nil {
		return fmt.Errorf("listing payable categories: %w", err)
	}
	receivables, err := svcs.Category.ListCategories(ctx, domain.KindReceivable)
	if err != nil {
		return fmt.Errorf("listing receivable categories: %w", err)
	}

	fmt.Printf("Seeded %s:\n", target)
	fmt.Println("  admin user ensured (default credentials admin/admin123, change the password on first login)")
	fmt.Printf("  %d payable and %d receivable categories ensured\n", len(payables), len(receivables))
	return nil
}
