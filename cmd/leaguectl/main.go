package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/street-hockey-league/internal/app"
	"github.com/riskibarqy/street-hockey-league/internal/config"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

var (
	verbose bool

	logger = logging.NewNop()

	// db and svc are opened on first use so that --help works without a database.
	db  *sqlx.DB
	svc *app.Services
)

var rootCmd = &cobra.Command{
	Use:   "leaguectl",
	Short: "Operator commands for the street hockey league",
	Long: `leaguectl runs the one-off maintenance jobs for the league database:
roster cleanup, captain links, staff groups, stat recalculation and
schedule imports.

Configuration is read from the environment (and .env) exactly like the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.NewConsole(level, os.Stderr).Named("leaguectl")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		deactivateCmd,
		captainURLsCmd,
		duplicatesCmd,
		goalieGroupCmd,
		quickCancelGroupCmd,
		superuserCmd,
		recalcCmd,
		importScheduleCmd,
	)
}

// services loads config and connects to Postgres once per invocation.
func services(ctx context.Context) (*app.Services, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if svc != nil {
		return svc, cfg, nil
	}

	conn, err := app.OpenDB(ctx, cfg, "leaguectl", logger)
	if err != nil {
		return nil, cfg, err
	}
	built, err := app.NewServices(cfg, conn, logger)
	if err != nil {
		_ = conn.Close()
		return nil, cfg, err
	}
	db, svc = conn, built
	return svc, cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
