package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Applies the embedded SQL migrations with sql-migrate (postgres).
With DB_DRIVER=sqlite the schema is created from the models instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := database.Migrate(a.db, a.cfg.Database.Driver); err != nil {
			return err
		}
		a.logger.Info("✅ Database schema is up to date", zap.String("driver", a.cfg.Database.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
