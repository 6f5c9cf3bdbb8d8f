package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/calendar"
)

type tagOptions struct {
	activities []string
	custom     string
	mood       int
	notes      string
}

func (o *tagOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.activities, "activity", nil, "activity, repeatable (e.g. \"🚶 Walking\")")
	cmd.Flags().StringVar(&o.custom, "custom", "", "free-form activity")
	cmd.Flags().IntVar(&o.mood, "mood", 0, "mood 1-5")
	cmd.Flags().StringVar(&o.notes, "notes", "", "notes")
}

func (o tagOptions) tags() sessiondto.Tags {
	return sessiondto.Tags{Activities: o.activities, CustomActivity: o.custom, MoodRating: o.mood, Notes: o.notes}
}

// merge keeps the fields of current whose flags were not given.
func (o tagOptions) merge(cmd *cobra.Command, current sessiondto.SessionOutput) sessiondto.Tags {
	tags := sessiondto.Tags{
		Activities:     current.Activities,
		CustomActivity: current.CustomActivity,
		MoodRating:     current.MoodRating,
		Notes:          current.Notes,
	}
	if cmd.Flags().Changed("activity") {
		tags.Activities = o.activities
	}
	if cmd.Flags().Changed("custom") {
		tags.CustomActivity = o.custom
	}
	if cmd.Flags().Changed("mood") {
		tags.MoodRating = o.mood
	}
	if cmd.Flags().Changed("notes") {
		tags.Notes = o.notes
	}
	return tags
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Offline session lifecycle"}

	var replace bool
	start := &cobra.Command{
		Use:   "start",
		Short: "Go offline now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := requireOnboarded(ctx, app); err != nil {
					return err
				}
				out, err := app.SessionCLI.Start(ctx, replace)
				if err != nil {
					return fmt.Errorf("%w (use --replace to discard it)", err)
				}
				_, _ = color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
					"Offline since %s. Enjoy!\n", out.StartTime.Format("3:04 PM"))
				return nil
			})
		},
	}
	start.Flags().BoolVar(&replace, "replace", false, "discard a session that is already running")

	var endTags tagOptions
	var skip bool
	end := &cobra.Command{
		Use:   "end",
		Short: "End the running session and log it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, ok, err := app.SessionCLI.End(ctx, endTags.tags(), skip)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No session is running.")
					return nil
				}
				_, _ = color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
					"Logged %s offline (%s).\n", calendar.FormatDuration(out.DurationMinutes),
					calendar.FormatTimeRange(out.StartTime, out.EndTime))
				return printDayLine(ctx, cmd, app, out.Date)
			})
		},
	}
	endTags.register(end)
	end.Flags().BoolVar(&skip, "skip", false, "log without activities, mood or notes")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				elapsed, err := app.SessionCLI.Elapsed(ctx)
				if err != nil {
					return err
				}
				if !elapsed.Active {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not offline right now.")
					return nil
				}
				active, err := app.SessionCLI.GetActive(ctx)
				if err != nil {
					return err
				}
				_, _ = color.New(color.FgYellow, color.Bold).Fprintf(cmd.OutOrStdout(),
					"● offline for %s", calendar.FormatElapsed(elapsed.Elapsed))
				_, _ = color.New(color.Faint).Fprintf(cmd.OutOrStdout(),
					" (started %s)\n", humanize.RelTime(active.StartTime, app.Clock.Now(), "ago", "from now"))
				return nil
			})
		},
	}

	var listDate string
	var listAll bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List sessions for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				date := listDate
				if listAll {
					date = ""
				} else if date == "" {
					date = app.Today()
				}
				sessions, err := app.SessionCLI.List(ctx, date)
				if err != nil {
					return err
				}
				printSessions(cmd, sessions)
				return nil
			})
		},
	}
	list.Flags().StringVar(&listDate, "date", "", "day to list (YYYY-MM-DD, default today)")
	list.Flags().BoolVar(&listAll, "all", false, "list every session")

	var editTags tagOptions
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the activities, mood or notes of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				current, err := app.SessionCLI.Get(ctx, args[0])
				if err != nil {
					return err
				}
				out, err := app.SessionCLI.Edit(ctx, args[0], editTags.merge(cmd, current))
				if err != nil {
					return err
				}
				printSessions(cmd, []sessiondto.SessionOutput{out})
				return nil
			})
		},
	}
	editTags.register(edit)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
				return nil
			})
		},
	}

	export := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every session as a Markdown note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Export(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s notes to %s.\n", humanize.Comma(int64(len(out.Paths))), args[0])
				return nil
			})
		},
	}

	session.AddCommand(start, end, status, list, edit, del, export)
	return session
}
