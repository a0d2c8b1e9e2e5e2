package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/metrics"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/menu"
	"max.ks1230/expense-tracker/internal/tracing"
)

// app is everything a command needs once the config has been read.
type app struct {
	conf   *config.Service
	store  *ledger.Store
	closer io.Closer
	server *metrics.Server
}

func setup(ctx context.Context, configPath string) (*app, error) {
	conf, err := config.New(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init config")
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		return nil, err
	}

	store := ledger.New(conf.Ledger().File())
	if err = store.Initialize(ctx); err != nil {
		_ = closer.Close()
		return nil, errors.Wrap(err, "failed to init ledger")
	}

	a := &app{conf: conf, store: store, closer: closer}
	if a.server = metrics.NewServer(conf.Metrics()); a.server != nil {
		go a.server.Serve()
	}
	return a, nil
}

func (a *app) close() {
	if a.server != nil {
		a.server.Shutdown()
	}
	if err := a.closer.Close(); err != nil {
		logger.Error("failed to close tracer", zap.Error(err))
	}
}

// withApp wraps a command body with setup and teardown.
func withApp(configPath *string, run func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx, *configPath)
		if err != nil {
			return err
		}
		defer a.close()

		return run(ctx, a, cmd, args)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Personal expense tracker",
		Long:          `Records dated expenses in a CSV ledger and reports on them. Without a subcommand an interactive menu is started.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: withApp(&configPath, func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			service := menu.NewService(a.store, a.conf.App(), a.conf.Ledger(), cmd.InOrStdin(), cmd.OutOrStdout())
			return service.Run(ctx)
		}),
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Path to the YAML config file")

	root.AddCommand(
		addCmd(&configPath),
		listCmd(&configPath),
		summaryCmd(&configPath),
		monthCmd(&configPath),
		searchCmd(&configPath),
		deleteCmd(&configPath),
		exportCmd(&configPath),
	)
	return root
}

func addCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <amount> <category> [description...]",
		Short: "Add an expense dated today",
		Args:  cobra.MinimumNArgs(2),
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			rec := expense.New(time.Now(), args[0], args[1], strings.Join(args[2:], " "))
			if err := a.store.Append(ctx, rec); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.String())
			return nil
		}),
	}
}

func listCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses with their row numbers",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			position := 0
			return a.store.Each(ctx, func(rec expense.Record) error {
				position++
				_, err := fmt.Fprintf(out, "%d. %s\n", position, rec)
				return err
			})
		}),
	}
}

func summaryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals per category",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			summary, err := a.store.SummarizeByCategory(ctx)
			if err != nil {
				return err
			}
			symbol := a.conf.App().CurrencySymbol()
			out := cmd.OutOrStdout()
			for _, t := range summary.Categories() {
				fmt.Fprintf(out, "%s: %s%s\n", t.Category, symbol, t.Total.StringFixed(2))
			}
			fmt.Fprintf(out, "Total: %s%s\n", symbol, summary.Total().StringFixed(2))
			return nil
		}),
	}
}

func monthCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show expenses of a month, the current one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			month := ledger.CurrentMonth(time.Now())
			if len(args) == 1 {
				month = args[0]
			}
			records, found, err := a.store.FilterByMonth(ctx, month)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records, found, "No expenses found for "+month+".")
		}),
	}
}

func searchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search expenses by category or description, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			records, found, err := a.store.Search(ctx, args[0])
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records, found, "No matching expenses found.")
		}),
	}
}

func deleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete the expense at the given row number (starting from 1)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid row number %q", args[0])
			}
			removed, err := a.store.DeleteAt(ctx, position)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", removed)
			return nil
		}),
	}
}

func exportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dest]",
		Short: "Copy the ledger to a report file",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(configPath, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			dest := a.conf.Ledger().ExportFile()
			if len(args) == 1 {
				dest = args[0]
			}
			if err := a.store.Export(ctx, dest); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expenses exported successfully to %s!\n", dest)
			return nil
		}),
	}
}

func printRecords(out io.Writer, records []expense.Record, found bool, notFound string) error {
	if !found {
		_, err := fmt.Fprintln(out, notFound)
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(out, rec.String()); err != nil {
			return err
		}
	}
	return nil
}
