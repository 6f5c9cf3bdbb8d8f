package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"offlinewins/internal/bootstrap"
)

func newHookCmd(opts *rootOptions) *cobra.Command {
	hook := &cobra.Command{Use: "hook", Short: "Event hooks declared in <data-dir>/hooks/hooks.yaml"}

	hook.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured hooks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				hooks, err := app.HookCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(hooks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hooks")
					return nil
				}
				tbl := newTable()
				tbl.AddRow("NAME", "VERSION", "ENABLED", "EVENTS", "BINARY")
				for _, h := range hooks {
					tbl.AddRow(h.Name, h.Version, strconv.FormatBool(h.Enabled), strings.Join(h.Events, ","), h.Binary)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
				return nil
			})
		},
	})

	hook.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check hook binaries, checksums and handshakes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				results, err := app.HookCLI.Doctor(ctx)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hooks")
					return nil
				}
				ok := color.New(color.FgGreen).SprintFunc()
				bad := color.New(color.FgRed).SprintFunc()
				check := func(v bool) string {
					if v {
						return ok("ok")
					}
					return bad("fail")
				}
				tbl := newTable()
				tbl.AddRow("NAME", "BINARY", "CHECKSUM", "HANDSHAKE", "ERROR")
				for _, r := range results {
					tbl.AddRow(r.Name, check(r.BinaryReachable), check(r.ChecksumValid), check(r.LifecycleOK), r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
				return nil
			})
		},
	})
	return hook
}
