package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"timesheet.app/timesheet/config"
	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/infrastructure/communication"
	"timesheet.app/timesheet/timesheet/store"
	"timesheet.app/timesheet/timesheet/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the timesheet API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, loc, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	drafts, closeDrafts, err := openDrafts(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeDrafts()

	gw := gateway.NewGatewayClient(cfg.Gateway.URL, cfg.Gateway.Timeout)
	opts := web.Options{
		Gateway:    gw,
		Drafts:     drafts,
		Language:   cfg.Language,
		Location:   loc,
		SigningKey: cfg.Auth.SigningSecret,
		TokenTTL:   cfg.Auth.TokenTTL,
		CookieName: cfg.Auth.CookieName,
	}

	notifier, err := communication.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	if notifier != nil {
		notifier.Names = employeeNames(gw)
		opts.Notifier = notifier
	}

	r, err := web.NewRouter(opts)
	if err != nil {
		return err
	}
	fmt.Printf("[INFO] listening on %s (gateway %s, drafts %s)\n", cfg.Addr, cfg.Gateway.URL, cfg.Database.Driver)
	return r.Run(cfg.Addr)
}

func openDrafts(ctx context.Context, cfg config.DatabaseConfig) (store.DraftStore, func(), error) {
	if cfg.Driver == "memory" {
		return store.NewMemoryStore(), func() {}, nil
	}
	dm, err := store.Open(cfg.Driver, cfg.DSN, cfg.MaxConnections, store.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, err
	}
	drafts, err := store.NewGormStore(ctx, dm)
	if err != nil {
		dm.Close()
		return nil, nil, err
	}
	return drafts, func() { dm.Close() }, nil
}

// employeeNames resolves display names for notifications. The employee list
// is loaded once and reloaded on a miss.
func employeeNames(gw *gateway.GatewayClient) func(ctx context.Context, id int) string {
	var mu sync.Mutex
	names := map[int]string{}
	return func(ctx context.Context, id int) string {
		mu.Lock()
		defer mu.Unlock()
		if name, ok := names[id]; ok {
			return name
		}
		employees, err := gw.Employees.List(ctx)
		if err != nil {
			fmt.Printf("[WARN] failed to load employees: %v\n", err)
			return fmt.Sprintf("#%d", id)
		}
		for _, e := range employees {
			names[e.ID] = e.FullName()
		}
		if name, ok := names[id]; ok {
			return name
		}
		return fmt.Sprintf("#%d", id)
	}
}
