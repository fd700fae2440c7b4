package cmd

import (
	"encoding/json"
	"fmt"

	"site-cms/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkOnly bool

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Auto-migrates every entity owned by an enabled feature. With --check it only reports missing tables and columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		models := a.mgr.Models()
		if checkOnly {
			issues, err := database.CheckSchema(a.db, models...)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Println("Schema is up to date")
				return nil
			}
			data, _ := json.MarshalIndent(issues, "", "  ")
			fmt.Println(string(data))
			return fmt.Errorf("%d tables need migration", len(issues))
		}

		if err := a.db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		a.logger.Info("Schema migrated", zap.Int("models", len(models)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&checkOnly, "check", false, "Report schema drift without changing anything")
}
