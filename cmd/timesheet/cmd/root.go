package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timesheet.app/timesheet/config"
	"timesheet.app/timesheet/utils"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Weekly timesheet entry and approval",
	Long: `timesheet serves the weekly timesheet API and runs the maintenance
jobs around it: exports, reminders and session tokens.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("TIMESHEET_CONFIG"), "path to a yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(remindCmd)
}

// loadConfig reads the config file and overlays the SSM secrets.
func loadConfig(ctx context.Context) (*config.Config, *time.Location, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.LoadSecrets(ctx); err != nil {
		return nil, nil, err
	}
	loc, err := utils.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid time zone %q: %w", cfg.TimeZone, err)
	}
	return cfg, loc, nil
}
