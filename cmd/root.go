package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/core/logger"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/database/migration"

	"github.com/spf13/cobra"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		err := migration.Migrate(
			dbURL,
			fmt.Sprintf("file://%s", migrationDir),
			logger.NewLogger(),
		)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "inventaris",
		Short: "Inventaris bookkeeping service",
	}
	MigrateCmd.Flags().String("dir", "migrations", "Directory containing the migration files")
	rootCmd.AddCommand(MigrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
