package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockroom/internal/database/migration"
	"stockroom/internal/logger"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	Long:  `Command that exists and should be used only for development purposes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		log := logger.NewLogger()
		defer log.Sync()

		if err := migration.Migrate(dbURL, fmt.Sprintf("file://%s", migrationDir), log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "stockroom",
		Short: "Warehouse stock and scanning service",
		Run:   func(_ *cobra.Command, _ []string) {},
	}
	MigrateCmd.Flags().String("dir", "migrations", "Directory containing the migration files")
	rootCmd.AddCommand(MigrateCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
