package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/domainstore/internal/app"
	"github.com/GlebRadaev/domainstore/internal/config"
	"github.com/GlebRadaev/domainstore/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var database, logLvl string

	rootCmd := &cobra.Command{
		Use:           "storeadmin",
		Short:         "Operator tasks for the domain store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&database, "database", "d", "", "database DSN (defaults to DATABASE_URI)")
	rootCmd.PersistentFlags().StringVarP(&logLvl, "log-level", "l", "", "log level (defaults to LOG_LVL)")

	loadConfig := func() (*config.Config, error) {
		cfg := config.Load()
		if database != "" {
			cfg.Database = database
		}
		if logLvl != "" {
			cfg.LogLvl = logLvl
		}
		if err := logger.InitLogger(cfg); err != nil {
			return nil, fmt.Errorf("can't init logger: %w", err)
		}
		return cfg, nil
	}
	withComponents := func(ctx context.Context, fn componentsFn) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := app.Build(ctx, cfg)
		if c != nil {
			defer c.Close()
		}
		if err != nil {
			return err
		}
		return fn(c, cfg)
	}

	rootCmd.AddCommand(
		migrateCmd(loadConfig),
		retryItemCmd(withComponents),
		resumeCmd(withComponents),
		expirePushesCmd(withComponents),
		balanceCmd(withComponents),
		refillCmd(withComponents),
		transactionsCmd(withComponents),
		grantAdminCmd(withComponents),
	)
	return rootCmd
}
