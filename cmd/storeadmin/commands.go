package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/GlebRadaev/domainstore/internal/app"
	"github.com/GlebRadaev/domainstore/internal/config"
	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/pg"
	"github.com/GlebRadaev/domainstore/internal/recovery"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/pkg/validate"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type componentsFn func(c *app.Components, cfg *config.Config) error

type runner func(ctx context.Context, fn componentsFn) error

func migrateCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := app.Connect(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("can't connect to database: %w", err)
			}
			defer pool.Close()
			if down {
				if err := pg.RollbackMigration(pool); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "rolled back the latest migration")
				return nil
			}
			if err := pg.RunMigrations(pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back the latest migration instead")
	return cmd
}

func retryItemCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "retry-item <order-number> <item-id>",
		Short: "Re-run the registrar operation of a failed order item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]
			if !validate.IsOrderNumber(number) {
				return fmt.Errorf("invalid order number %q", number)
			}
			itemID, err := strconv.Atoi(args[1])
			if err != nil || itemID <= 0 {
				return fmt.Errorf("invalid item id %q", args[1])
			}
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				item, err := c.Services.FulfillmentService.RetryItem(cmd.Context(), fulfillmentservice.Actor{IsAdmin: true}, number, itemID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "item %d (%s %s): %s", item.ID, item.Type, item.DomainName, item.Status)
				if item.ErrorMessage != "" {
					fmt.Fprintf(cmd.OutOrStdout(), ": %s", item.ErrorMessage)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
}

func resumeCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Run one recovery pass over stalled orders and overdue push requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(c *app.Components, cfg *config.Config) error {
				rec := recovery.New(cfg, c.Repo.OrderRepo, c.Services.FulfillmentService, c.Services.PushService)
				rec.Sweep(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), "recovery pass finished")
				return nil
			})
		},
	}
}

func expirePushesCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "expire-pushes",
		Short: "Expire pending push requests past their deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				n, err := c.Services.PushService.ExpireOverdue(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d push request(s)\n", n)
				return nil
			})
		},
	}
}

func parseMode(s string) (domain.RegistrarMode, error) {
	mode := domain.RegistrarMode(s)
	if !mode.Valid() {
		return "", fmt.Errorf("unknown registrar mode %q", s)
	}
	return mode, nil
}

func balanceCmd(run runner) *cobra.Command {
	var modeFlag string
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the registrar prepaid balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(modeFlag)
			if err != nil {
				return err
			}
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				available, err := c.Services.BalanceService.Balance(cmd.Context(), mode)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", mode, available.StringFixed(2))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", string(domain.ModeLive), "registrar mode (test|live)")
	return cmd
}

func refillCmd(run runner) *cobra.Command {
	var modeFlag, amountFlag, note string
	cmd := &cobra.Command{
		Use:   "refill",
		Short: "Top up the registrar prepaid balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(modeFlag)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountFlag)
			if err != nil || !amount.IsPositive() {
				return fmt.Errorf("invalid amount %q", amountFlag)
			}
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				tx, err := c.Services.BalanceService.Refill(cmd.Context(), mode, amount, note)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "refilled %s (fee %s, net %s), balance now %s\n",
					tx.Amount.StringFixed(2), tx.Fee.StringFixed(2), tx.NetAmount.StringFixed(2), tx.BalanceAfter.StringFixed(2))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", string(domain.ModeLive), "registrar mode (test|live)")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount to add")
	cmd.Flags().StringVar(&note, "note", "", "note stored with the ledger entry")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transactionsCmd(run runner) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recent balance ledger entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				txs, err := c.Services.BalanceService.Transactions(cmd.Context(), limit)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tFEE\tNET\tBEFORE\tAFTER\tDOMAIN\tCREATED")
				for _, tx := range txs {
					name := ""
					if tx.DomainName != nil {
						name = *tx.DomainName
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", tx.ID, tx.Type,
						tx.Amount.StringFixed(2), tx.Fee.StringFixed(2), tx.NetAmount.StringFixed(2),
						tx.BalanceBefore.StringFixed(2), tx.BalanceAfter.StringFixed(2), name,
						tx.CreatedAt.Format("2006-01-02 15:04:05"))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries")
	return cmd
}

func grantAdminCmd(run runner) *cobra.Command {
	var revoke bool
	cmd := &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Give an account staff rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(c *app.Components, _ *config.Config) error {
				ok, err := c.Repo.UserRepo.SetAdmin(cmd.Context(), args[0], !revoke)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no account uses %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s admin=%t\n", args[0], !revoke)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "remove staff rights instead")
	return cmd
}
