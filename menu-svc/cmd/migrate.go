package cmd

import (
	"menu-admin/config"
	"menu-admin/menu-svc/internal/storage"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the menu tables and indexes if they are missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db := config.MustInitPostgres(cfg.Database)
		defer db.Close()

		if err := storage.NewPostgresRepository(db).EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		log.Info().Str("database", cfg.Database.Name).Msg("schema is up to date")
		return nil
	},
}
