package cmd

import (
	"fmt"
	"os"

	"menu-admin/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "menu-svc",
	Short: "Restaurant menu admin service",
	Long: `Back-office service for a restaurant's digital menu.

It manages categories, menu items, display themes and the QR codes that
point guests at the hosted menu.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads .env (if any), the config file and the environment, then
// sets up logging.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg.Log)
	return cfg, nil
}
