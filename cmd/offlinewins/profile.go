package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
	profiledto "offlinewins/internal/modules/profile/dto"
	"offlinewins/internal/platform/calendar"
)

func newOnboardCmd(opts *rootOptions) *cobra.Command {
	var name string
	var goal int
	cmd := &cobra.Command{
		Use:   "onboard --name <name> [--goal <minutes>]",
		Short: "Set your name and daily offline goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.Onboard(ctx, name, goal)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Your daily goal is %s offline.\n",
					out.Name, calendar.FormatDuration(out.DailyGoalMinutes))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().IntVar(&goal, "goal", 60, "daily goal in minutes (5-480)")
	return cmd
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show or change your settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.Get(ctx)
				if err != nil {
					return err
				}
				printSettings(cmd, out)
				return nil
			})
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "goal <minutes>",
		Short: "Change the daily goal (presets: 30, 60, 120, 180)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.SetGoal(ctx, args[0])
				if err != nil {
					return err
				}
				if !out.Changed {
					_, _ = color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(),
						"%q is not a valid goal; keeping %s.\n", args[0], calendar.FormatDuration(out.Settings.DailyGoalMinutes))
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Daily goal set to %s.\n", calendar.FormatDuration(out.Settings.DailyGoalMinutes))
				return nil
			})
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "name <name>",
		Short: "Change your display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.SetName(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Name set to %s.\n", out.Name)
				return nil
			})
		},
	})
	return settings
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete all sessions, settings and reflections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete everything without --yes")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ProfileCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func printSettings(cmd *cobra.Command, s profiledto.SettingsOutput) {
	name := s.Name
	if name == "" {
		name = "(not set)"
	}
	tbl := newTable()
	tbl.AddRow("name:", name)
	tbl.AddRow("daily goal:", calendar.FormatDuration(s.DailyGoalMinutes)+" ("+strconv.Itoa(s.DailyGoalMinutes)+" min)")
	tbl.AddRow("onboarded:", strconv.FormatBool(s.OnboardingComplete))
	if !s.CreatedAt.IsZero() {
		tbl.AddRow("member since:", s.CreatedAt.Format("January 2, 2006"))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
}
