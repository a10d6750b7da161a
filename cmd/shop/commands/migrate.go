package commands

import (
	"github.com/mytheresa/go-shop/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		return migrations.Up(cfg.DB, db, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
