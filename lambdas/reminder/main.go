package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"timesheet.app/timesheet/config"
	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/infrastructure/communication"
	"timesheet.app/timesheet/lambdas/reminder/helper"
	"timesheet.app/timesheet/utils"
)

// ReminderEvent selects the week to check. Without a date the previous week
// is checked.
type ReminderEvent struct {
	Date   *string `json:"date"`
	DryRun bool    `json:"dryRun"`
}

type ReminderResult struct {
	WeekOf    string                   `json:"weekOf"`
	Reminders []communication.Reminder `json:"reminders"`
}

func HandleRequest(ctx context.Context, event ReminderEvent) (*ReminderResult, error) {
	eventJson, _ := json.Marshal(event)
	fmt.Printf("[INFO] Event: %s\n", string(eventJson))

	cfg, err := config.Load(os.Getenv("TIMESHEET_CONFIG"))
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadSecrets(ctx); err != nil {
		return nil, err
	}
	if cfg.Gateway.URL == "" {
		return nil, config.ErrGatewayNotConfigured
	}
	loc, err := utils.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	day := time.Now().In(loc).AddDate(0, 0, -7)
	if event.Date != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *event.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		day = parsed
	}

	notifier, err := communication.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gw := gateway.NewGatewayClient(cfg.Gateway.URL, cfg.Gateway.Timeout)
	reminders, err := helper.Remind(ctx, gw, notifier, day, loc, event.DryRun)
	if err != nil {
		if notifier != nil {
			if alertErr := notifier.Alert(ctx, fmt.Sprintf("timesheet reminder for %s failed: %v", day.Format("2006-01-02"), err)); alertErr != nil {
				fmt.Printf("[ERROR] failed to send alert: %v\n", alertErr)
			}
		}
		return nil, err
	}
	return &ReminderResult{WeekOf: day.Format("2006-01-02"), Reminders: reminders}, nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
	} else {
		result, err := HandleRequest(context.Background(), ReminderEvent{DryRun: true})
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
	}
}
