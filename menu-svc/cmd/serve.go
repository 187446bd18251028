package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"menu-admin/config"
	httpapi "menu-admin/menu-svc/internal/api/http"
	"menu-admin/menu-svc/internal/service"
	"menu-admin/menu-svc/internal/storage"
	"menu-admin/menu-svc/internal/validation"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db := config.MustInitPostgres(cfg.Database)
		defer db.Close()

		repo := storage.NewPostgresRepository(db)
		if !skipMigrate {
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
		}

		var themeCache service.ThemeCache
		if cfg.Redis.Enabled() {
			client := config.MustInitRedis(cfg.Redis)
			defer client.Close()
			themeCache = storage.NewRedisThemeCache(client, cfg.Redis.ThemeTTL)
		} else {
			log.Info().Msg("REDIS_HOST not set, active theme is read from Postgres on every request")
		}

		var publisher service.EventPublisher
		if cfg.Kafka.Enabled() {
			writer := config.NewKafkaWriter(cfg.Kafka)
			defer writer.Close()
			publisher = storage.NewKafkaPublisher(writer)
		}

		validator := validation.New()
		generator := service.NewTemplateQRGenerator(cfg.QR.ServiceURL, cfg.QR.Size)

		handler := httpapi.NewHandler(
			service.NewCategoryService(repo, validator, publisher),
			service.NewMenuItemService(repo, repo, validator, publisher),
			service.NewMenuThemeService(repo, themeCache, validator, publisher),
			service.NewQRCodeService(repo, generator, validator, publisher),
		)

		return httpapi.StartServer(ctx, cfg.HTTP.Addr, httpapi.NewRouter(handler))
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create missing tables on startup")
}
