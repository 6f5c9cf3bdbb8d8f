package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
	"offlinewins/internal/platform/calendar"
)

func newDayCmd(opts *rootOptions) *cobra.Command {
	day := &cobra.Command{Use: "day", Short: "Daily summary and mood"}

	day.AddCommand(&cobra.Command{
		Use:   "show [YYYY-MM-DD]",
		Short: "Show a day's total, goal and mood",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				date := dateArg(app, args)
				if err := printDayLine(ctx, cmd, app, date); err != nil {
					return err
				}
				sessions, err := app.SessionCLI.List(ctx, date)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				printSessions(cmd, sessions)
				return nil
			})
		},
	})

	var moodDate string
	mood := &cobra.Command{
		Use:   "mood <1-5>",
		Short: "Set how the whole day felt, overriding session moods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number from 1 to 5")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				date := moodDate
				if date == "" {
					date = app.Today()
				}
				if _, err := app.ReflectionCLI.SetDayMood(ctx, date, rating); err != nil {
					return err
				}
				return printDayLine(ctx, cmd, app, date)
			})
		},
	}
	mood.Flags().StringVar(&moodDate, "date", "", "day to set (YYYY-MM-DD, default today)")
	day.AddCommand(mood)
	return day
}

func newCalendarCmd(opts *rootOptions) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month with goal-met days highlighted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var parsed time.Time
			if month != "" {
				var err error
				parsed, err = time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("--month must be YYYY-MM: %w", err)
				}
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				at := parsed
				if month == "" {
					at = app.Clock.Now()
				}
				out, err := app.InsightsCLI.Month(ctx, at.Year(), int(at.Month())-1)
				if err != nil {
					return err
				}
				printMonth(cmd, out, app.InsightsCLI.Mood)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default current)")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Lifetime totals and streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.InsightsCLI.Stats(ctx)
				if err != nil {
					return err
				}
				title := color.New(color.Bold, color.Underline)
				_, _ = title.Fprintln(cmd.OutOrStdout(), "Lifetime")
				tbl := newTable()
				tbl.AddRow("total offline:", fmt.Sprintf("%.1f h", s.TotalHours))
				tbl.AddRow("sessions:", humanize.Comma(int64(s.TotalSessions)))
				tbl.AddRow("current streak:", plural(s.CurrentStreak, "day"))
				tbl.AddRow("longest streak:", plural(s.LongestStreak, "day"))
				tbl.AddRow("today:", fmt.Sprintf("%s of %s (%.0f%%)",
					calendar.FormatDuration(s.TodayMinutes), calendar.FormatDuration(s.GoalMinutes), s.TodayProgress*100))
				if !s.MemberSince.IsZero() {
					tbl.AddRow("member since:", humanize.RelTime(s.MemberSince, app.Clock.Now(), "ago", "from now"))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
				return nil
			})
		},
	}
}

func newReflectCmd(opts *rootOptions) *cobra.Command {
	reflect := &cobra.Command{
		Use:   "reflect",
		Short: "Look back at yesterday",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				prompt, err := app.ReflectionCLI.Prompt(ctx, app.Today())
				if err != nil {
					return err
				}
				if !prompt.Show {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reflect on right now.")
					return nil
				}
				_, _ = color.New(color.Bold).Fprintf(cmd.OutOrStdout(), "%s\n", calendar.FormatDayHeader(prompt.Date))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "You went offline %s.", plural(prompt.SessionCount, "time"))
				if prompt.Mood != 0 {
					m := app.InsightsCLI.Mood(prompt.Mood)
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " Overall it felt %s %s.", m.Emoji, m.Label)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				_, _ = color.New(color.Faint).Fprintln(cmd.OutOrStdout(),
					"Run `offlinewins reflect keep`, `reflect change <1-5>` or `reflect dismiss`.")
				return nil
			})
		},
	}

	answer := func(use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, app *bootstrap.App, date string, args []string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
					prompt, err := app.ReflectionCLI.Prompt(ctx, app.Today())
					if err != nil {
						return err
					}
					if !prompt.Show {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reflect on right now.")
						return nil
					}
					if err := fn(ctx, app, prompt.Date, args); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Thanks for reflecting.")
					return nil
				})
			},
		}
	}

	reflect.AddCommand(
		answer("keep", "Keep yesterday's mood", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, date string, _ []string) error {
			return app.ReflectionCLI.Keep(ctx, date)
		}),
		answer("change <1-5>", "Set yesterday's mood", cobra.ExactArgs(1), func(ctx context.Context, app *bootstrap.App, date string, args []string) error {
			rating, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number from 1 to 5")
			}
			return app.ReflectionCLI.Change(ctx, date, rating)
		}),
		answer("dismiss", "Skip this reflection", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, date string, _ []string) error {
			return app.ReflectionCLI.Dismiss(ctx, date)
		}),
	)
	return reflect
}

func dateArg(app *bootstrap.App, args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return app.Today()
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
