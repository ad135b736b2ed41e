package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyplan/internal/bootstrap"
	analyticsdto "studyplan/internal/modules/analytics/dto"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var rangeName string

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Study totals; --range switches to the advanced breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				w := cmd.OutOrStdout()
				if rangeName != "" {
					adv, err := app.AnalyticsCLI.Advanced(ctx, rangeName)
					if err != nil {
						return err
					}
					if opts.json {
						return printJSON(w, adv)
					}
					_, _ = fmt.Fprintf(w, "range %s: %gh over %d sessions, avg %g min, focus %g, completion %d%%\n",
						adv.Range, adv.TotalHours, adv.TotalSessions, adv.AvgSessionLength, adv.AvgFocusRating, adv.CompletionRate)
					for _, s := range adv.SubjectBreakdown {
						_, _ = fmt.Fprintf(w, "  %-20s %6gh %3d%%  %d sessions\n", s.Subject, s.Hours, s.Percentage, s.Sessions)
					}
					return nil
				}
				st, err := app.AnalyticsCLI.Stats(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(w, st)
				}
				_, _ = fmt.Fprintf(w, "%gh total, %d sessions, %d%% completed, focus %g/5\n",
					st.TotalHours, st.TotalSessions, st.CompletionRate, st.AvgFocusRating)
				for _, s := range st.SubjectBreakdown {
					_, _ = fmt.Fprintf(w, "  %-20s %6gh  %d sessions\n", s.Subject, s.Hours, s.Sessions)
				}
				return nil
			})
		},
	}
	stats.Flags().StringVar(&rangeName, "range", "", "7d|30d|90d|all")

	stats.AddCommand(&cobra.Command{
		Use:   "weekly",
		Short: "Hours per day of the current week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				days, err := app.AnalyticsCLI.Weekly(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), days)
				}
				for _, d := range days {
					marker := ""
					if d.IsToday {
						marker = " <- today"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-6s %5gh%s\n", d.Day, d.Date, d.Hours, marker)
				}
				return nil
			})
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Today's hours against daily targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				d, err := app.AnalyticsCLI.Daily(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), d)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "today %gh of %gh (%d%%)\n", d.TodayHours, d.TotalDailyTarget, d.DailyCompletionRate)
				printProgress(cmd, d.SubjectProgress)
				return nil
			})
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "subjects",
		Short: "This week's hours against weekly targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				ws, err := app.AnalyticsCLI.Subjects(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), ws)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "week %gh of %gh (%d%%)\n", ws.TotalWeekHours, ws.TotalWeeklyTarget, ws.OverallWeeklyCompletion)
				printProgress(cmd, ws.SubjectProgress)
				return nil
			})
		},
	})
	return stats
}

func printProgress(cmd *cobra.Command, rows []analyticsdto.SubjectProgress) {
	for _, p := range rows {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %5gh / %-5gh %3d%%\n", p.Subject, p.HoursStudied, p.TargetHours, p.CompletionRate)
	}
}

func newInsightsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Study pattern insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				insights, err := app.AnalyticsCLI.Insights(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), insights)
				}
				for _, in := range insights {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", in.Title, in.Description)
				}
				return nil
			})
		},
	}
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var rangeName, style string
	var width int
	var plain bool

	report := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown study report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				var out string
				var err error
				if plain {
					out, err = app.ReportCLI.Markdown(ctx, rangeName)
				} else {
					out, err = app.ReportCLI.Render(ctx, rangeName, style, width)
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	report.Flags().StringVar(&rangeName, "range", "30d", "7d|30d|90d|all")
	report.Flags().StringVar(&style, "style", "dark", "glamour style: dark|light|notty|ascii or a JSON style path")
	report.Flags().IntVar(&width, "width", 80, "word wrap width")
	report.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	return report
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	sync := &cobra.Command{Use: "sync", Short: "Mirror local data to the remote tables"}

	sync.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Replace the remote copy with local data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				results, err := app.RemoteCLI.Push(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), results)
				}
				for _, r := range results {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pushed %-9s %d\n", r.Collection, r.Records)
				}
				return nil
			})
		},
	})

	sync.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Replace local data with the remote copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				results, err := app.RemoteCLI.Pull(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), results)
				}
				for _, r := range results {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pulled %-9s %d\n", r.Collection, r.Records)
				}
				return nil
			})
		},
	})

	sync.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Compare local and remote record counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				st, err := app.RemoteCLI.Status(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), st)
				}
				if !st.Enabled {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "remote mirror: off")
				}
				for _, c := range st.Collections {
					line := fmt.Sprintf("%-9s local=%d remote=%d in-sync=%t", c.Collection, c.Local, c.Remote, c.InSync)
					if c.Error != "" {
						line += " error=" + c.Error
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	})
	return sync
}
