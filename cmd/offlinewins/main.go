package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	"offlinewins/internal/platform/config"
	apperrors "offlinewins/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir   string
	ephemeral bool
	clock     clock.Clock
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithClock(clock.SystemClock{})
}

func newRootCmdWithClock(clk clock.Clock) *cobra.Command {
	opts := &rootOptions{clock: clk}

	root := &cobra.Command{
		Use:           "offlinewins",
		Short:         "Track the time you spend offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default $OFFLINEWINS_DATA_DIR or ~/.offlinewins)")
	root.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "keep all data in memory for this run")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newOnboardCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	root.AddCommand(newDayCmd(opts))
	root.AddCommand(newCalendarCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newReflectCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newHookCmd(opts))
	return root
}

// withApp opens the store, recovers an expired session and runs fn.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.New(opts.dataDir)
	if err != nil {
		return err
	}
	if opts.ephemeral {
		cfg.StorageDriver = config.DriverMemory
	}
	app, err := bootstrap.NewWithClock(cfg, opts.clock)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	expired, err := app.SessionCLI.RecoverExpired(ctx)
	if err != nil {
		return err
	}
	if expired.Expired {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(cmd.ErrOrStderr(),
			"Your session from %s ran too long and was saved as %s.\n",
			calendar.FormatTimeRange(expired.Session.StartTime, expired.Session.EndTime),
			calendar.FormatDuration(expired.Session.DurationMinutes))
	}
	return fn(ctx, app)
}

func requireOnboarded(ctx context.Context, app *bootstrap.App) error {
	settings, err := app.ProfileCLI.Get(ctx)
	if err != nil {
		return err
	}
	if !settings.OnboardingComplete {
		return fmt.Errorf("%w: run `offlinewins onboard --name <name>` first", apperrors.ErrNotOnboarded)
	}
	return nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := requireOnboarded(ctx, app); err != nil {
					return err
				}
				return bootstrap.RunTUI(app)
			})
		},
	}
}
