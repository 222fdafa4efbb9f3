package cmd

import (
	"log"

	"mlmusic/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema.",
	Run: func(cmd *cobra.Command, args []string) {
		_, cleanup, err := setup()
		if err != nil {
			log.Fatalf("setup failed: %v", err)
		}
		defer cleanup()

		if err := db.AutoMigrate(); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
