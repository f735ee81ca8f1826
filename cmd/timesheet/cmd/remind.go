package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timesheet.app/timesheet/config"
	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/infrastructure/communication"
	"timesheet.app/timesheet/lambdas/reminder/helper"
)

var (
	remindWeek   string
	remindDryRun bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Remind employees about incomplete weeks",
	Long: `remind checks one week (the previous one by default) and notifies the
configured channels about every employee whose days are not at 8 hours.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().StringVar(&remindWeek, "week", "", "Any day of the week to check (YYYY-MM-DD)")
	remindCmd.Flags().BoolVar(&remindDryRun, "dry-run", false, "Print reminders without sending them")
}

func runRemind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, loc, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Gateway.URL == "" {
		return config.ErrGatewayNotConfigured
	}

	day := time.Now().In(loc).AddDate(0, 0, -7)
	if remindWeek != "" {
		day, err = time.ParseInLocation("2006-01-02", remindWeek, loc)
		if err != nil {
			return fmt.Errorf("invalid week %q: %w", remindWeek, err)
		}
	}

	notifier, err := communication.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	gw := gateway.NewGatewayClient(cfg.Gateway.URL, cfg.Gateway.Timeout)
	reminders, err := helper.Remind(ctx, gw, notifier, day, loc, remindDryRun)
	if err != nil {
		return err
	}
	for _, r := range reminders {
		fmt.Println(r.Text())
	}
	return nil
}
