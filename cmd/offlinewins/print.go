package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
	insightsdto "offlinewins/internal/modules/insights/dto"
	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
)

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	return tbl
}

func printSessions(cmd *cobra.Command, sessions []sessiondto.SessionOutput) {
	if len(sessions) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(cmd.OutOrStdout(), " none")
		return
	}
	tbl := newTable()
	tbl.AddRow("DATE", "TIME", "DURATION", "MOOD", "ACTIVITIES", "ID")
	for _, s := range sessions {
		emoji := ""
		if s.MoodRating != 0 {
			emoji = mood.For(s.MoodRating).Emoji
		}
		activities := s.Activities
		if s.CustomActivity != "" {
			activities = append(append([]string{}, activities...), s.CustomActivity)
		}
		tbl.AddRow(s.Date, calendar.FormatTimeRange(s.StartTime, s.EndTime),
			calendar.FormatDuration(s.DurationMinutes), emoji, strings.Join(activities, ", "), s.ID)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
}

// printDayLine prints "Thursday, Feb 1: 45m of 1h, goal met 😊".
func printDayLine(ctx context.Context, cmd *cobra.Command, app *bootstrap.App, date string) error {
	day, err := app.InsightsCLI.Day(ctx, date)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = color.New(color.Bold).Fprintf(out, "%s: ", calendar.FormatDayHeader(day.Date))
	_, _ = fmt.Fprintf(out, "%s of %s", calendar.FormatDuration(day.TotalMinutes), calendar.FormatDuration(day.GoalMinutes))
	if day.GoalMet {
		_, _ = color.New(color.FgGreen, color.Bold).Fprint(out, ", goal met")
	}
	if day.Mood != nil {
		_, _ = fmt.Fprintf(out, " %s %s", day.Mood.Emoji, day.Mood.Label)
	}
	_, _ = fmt.Fprintln(out)
	return nil
}

// printMonth draws a Monday-first grid; goal-met days are bold green and
// days with a mood carry its emoji.
func printMonth(cmd *cobra.Command, month insightsdto.MonthOutput, moodOf func(int) insightsdto.MoodOutput) {
	out := cmd.OutOrStdout()
	_, _ = color.New(color.Bold, color.Underline).Fprintln(out, month.Title)
	_, _ = color.New(color.Faint).Fprintln(out, "Mo    Tu    We    Th    Fr    Sa    Su")

	plain := color.New(color.Faint)
	met := color.New(color.FgGreen, color.Bold)
	some := color.New(color.FgWhite)
	for i, cell := range month.Cells {
		if cell.Day == 0 {
			_, _ = fmt.Fprint(out, "      ")
		} else {
			printer := plain
			switch {
			case cell.GoalMet:
				printer = met
			case cell.TotalMinutes > 0:
				printer = some
			}
			if cell.IsToday {
				printer = color.New(color.Underline, color.Bold)
			}
			mark := "  "
			if cell.Mood != 0 {
				mark = moodOf(cell.Mood).Emoji
			}
			_, _ = printer.Fprintf(out, "%2d", cell.Day)
			_, _ = fmt.Fprintf(out, " %s ", mark)
		}
		if i%7 == 6 {
			_, _ = fmt.Fprintln(out)
		}
	}
	_, _ = fmt.Fprintln(out)
	_, _ = color.New(color.Faint).Fprintf(out, "goal: %s a day\n", calendar.FormatDuration(month.GoalMinutes))
}
