// Command talentctl manages job requirements and candidates from the
// terminal, against the same storage the API server uses.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go-talent-dashboard/config"
	"go-talent-dashboard/internal/app"
	"go-talent-dashboard/internal/search"
	"go-talent-dashboard/pkg/apperror"
	"go-talent-dashboard/pkg/logger"

	"github.com/spf13/cobra"
)

type options struct {
	storeDriver string
	sqlitePath  string
	fast        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "talentctl",
		Short:         "Manage job requirements and candidates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.storeDriver, "store", "", "Storage driver: memory, sqlite, postgres or redis (default: STORE_DRIVER)")
	root.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite-path", "", "SQLite database file (default: SQLITE_PATH)")

	root.AddCommand(newJobsCmd(opts))
	root.AddCommand(newCandidatesCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	return root
}

// withApp boots the application for one command and shuts it down after.
func withApp(ctx context.Context, opts *options, fn func(*app.App) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.storeDriver != "" {
		cfg.StoreDriver = opts.storeDriver
	}
	if opts.sqlitePath != "" {
		cfg.SQLitePath = opts.sqlitePath
	}

	var ticker search.Ticker
	if opts.fast {
		ticker = search.InstantTicker{}
	}

	a, err := app.New(ctx, cfg, ticker)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Shutdown(context.Background()); err != nil {
			logger.Log.Warn("Shutdown failed", "error", err)
		}
	}()
	return fn(a)
}

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger.Init(level)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return
	}
	for _, d := range appErr.Details {
		fmt.Fprintln(w, "  -", d)
	}
	if appErr.Err != nil {
		fmt.Fprintln(w, "  cause:", appErr.Err)
	}
}
