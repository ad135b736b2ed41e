package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyplan/internal/bootstrap"
	sessiondto "studyplan/internal/modules/session/dto"
	subjectdto "studyplan/internal/modules/subject/dto"
)

func newSubjectCmd(opts *rootOptions) *cobra.Command {
	subject := &cobra.Command{Use: "subject", Short: "Manage study subjects"}

	var color string
	var difficulty, priority int
	var weekly, daily float64

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := subjectdto.AddSubjectInput{
				Name:       args[0],
				Color:      color,
				Difficulty: difficulty,
				Priority:   priority,
			}
			if cmd.Flags().Changed("weekly") {
				input.TargetHoursPerWeek = &weekly
			}
			if cmd.Flags().Changed("daily") {
				input.TargetHoursPerDay = &daily
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SubjectCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Name, out.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&color, "color", "", "hex colour (defaults to the first palette colour)")
	add.Flags().IntVar(&difficulty, "difficulty", 0, "difficulty 1..5 (default 3)")
	add.Flags().IntVar(&priority, "priority", 0, "priority 1..5 (default 3)")
	add.Flags().Float64Var(&weekly, "weekly", 0, "weekly target hours (default 5)")
	add.Flags().Float64Var(&daily, "daily", 0, "daily target hours (defaults to weekly/7)")

	var upName, upColor string
	var upDifficulty, upPriority int
	var upWeekly, upDaily float64
	var clearDaily bool

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := subjectdto.UpdateSubjectInput{ID: args[0], ClearDailyTarget: clearDaily}
			flags := cmd.Flags()
			if flags.Changed("name") {
				input.Name = &upName
			}
			if flags.Changed("color") {
				input.Color = &upColor
			}
			if flags.Changed("difficulty") {
				input.Difficulty = &upDifficulty
			}
			if flags.Changed("priority") {
				input.Priority = &upPriority
			}
			if flags.Changed("weekly") {
				input.TargetHoursPerWeek = &upWeekly
			}
			if flags.Changed("daily") {
				input.TargetHoursPerDay = &upDaily
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SubjectCLI.Update(ctx, input)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", out.Name, out.ID)
				return nil
			})
		},
	}
	update.Flags().StringVar(&upName, "name", "", "subject name")
	update.Flags().StringVar(&upColor, "color", "", "hex colour")
	update.Flags().IntVar(&upDifficulty, "difficulty", 0, "difficulty 1..5")
	update.Flags().IntVar(&upPriority, "priority", 0, "priority 1..5")
	update.Flags().Float64Var(&upWeekly, "weekly", 0, "weekly target hours")
	update.Flags().Float64Var(&upDaily, "daily", 0, "daily target hours")
	update.Flags().BoolVar(&clearDaily, "clear-daily", false, "drop the explicit daily target")

	subject.AddCommand(add, update)

	subject.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subject (its sessions are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SubjectCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	subject.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				subjects, err := app.SubjectCLI.List(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), subjects)
				}
				if len(subjects) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no subjects")
					return nil
				}
				for _, s := range subjects {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%gh/week\t%gh/day\n",
						s.ID, s.Name, s.Color, s.TargetHoursPerWeek, s.DailyTarget)
				}
				return nil
			})
		},
	})
	return subject
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Study timer and session history"}

	printTimer := func(cmd *cobra.Command, verb string, t sessiondto.TimerOutput) error {
		if opts.json {
			return printJSON(cmd.OutOrStdout(), t)
		}
		state := "running"
		if t.Paused {
			state = "paused"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s [%s]\n", verb, t.SubjectName, t.Clock, state)
		return nil
	}

	session.AddCommand(&cobra.Command{
		Use:   "start <subject-id>",
		Short: "Start the study timer for a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.SessionCLI.Start(ctx, args[0])
				if err != nil {
					return err
				}
				return printTimer(cmd, "started", t)
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.SessionCLI.Pause(ctx)
				if err != nil {
					return err
				}
				return printTimer(cmd, "paused", t)
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "resume",
		Short: "Resume a paused timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.SessionCLI.Resume(ctx)
				if err != nil {
					return err
				}
				return printTimer(cmd, "resumed", t)
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.SessionCLI.Status(ctx)
				if err != nil {
					return err
				}
				return printTimer(cmd, "timer", t)
			})
		},
	})

	var notes string
	var focus int

	note := &cobra.Command{
		Use:   "note",
		Short: "Set notes or focus on the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, f := optionalNotesFocus(cmd, &notes, &focus)
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.SessionCLI.Annotate(ctx, n, f)
				if err != nil {
					return err
				}
				return printTimer(cmd, "noted", t)
			})
		},
	}
	note.Flags().StringVar(&notes, "notes", "", "session notes")
	note.Flags().IntVar(&focus, "focus", 0, "focus rating 1..5")

	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and save the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, f := optionalNotesFocus(cmd, &notes, &focus)
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Stop(ctx, n, f)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved session %s: %d min, focus %d/5\n",
					out.ID, out.DurationMinutes, out.FocusRating)
				return nil
			})
		},
	}
	stop.Flags().StringVar(&notes, "notes", "", "session notes")
	stop.Flags().IntVar(&focus, "focus", 0, "focus rating 1..5 (default 3)")

	session.AddCommand(note, stop)

	session.AddCommand(&cobra.Command{
		Use:   "discard",
		Short: "Drop the running timer without saving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Discard(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "timer discarded")
				return nil
			})
		},
	})

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Print the running timer every tick until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				readings, err := app.SessionCLI.Watch(ctx, interval)
				if err != nil {
					return err
				}
				for t := range readings {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\r%s %s", t.SubjectName, t.Clock)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
	watch.Flags().DurationVar(&interval, "interval", time.Second, "display refresh interval")
	session.AddCommand(watch)

	var logSubject, logStart, logNotes string
	var logMinutes, logFocus int
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record a finished session manually",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := sessiondto.LogInput{
				SubjectID:       logSubject,
				DurationMinutes: logMinutes,
				FocusRating:     logFocus,
				Notes:           logNotes,
			}
			if logStart != "" {
				start, err := time.ParseInLocation("2006-01-02 15:04", logStart, time.Local)
				if err != nil {
					return fmt.Errorf("--start must look like 2006-01-02 15:04: %w", err)
				}
				input.StartTime = start
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Log(ctx, input)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged session %s: %d min\n", out.ID, out.DurationMinutes)
				return nil
			})
		},
	}
	logCmd.Flags().StringVar(&logSubject, "subject", "", "subject id")
	logCmd.Flags().StringVar(&logStart, "start", "", "start time, local (default: now minus duration)")
	logCmd.Flags().IntVar(&logMinutes, "minutes", 0, "duration in minutes")
	logCmd.Flags().IntVar(&logFocus, "focus", 0, "focus rating 1..5 (default 3)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "session notes")
	session.AddCommand(logCmd)

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				entries, err := app.SessionCLI.History(ctx, limit)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), entries)
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%dm\tfocus %d\t%s\n",
						e.ID, e.StartTime.Local().Format("2006-01-02 15:04"), e.SubjectName,
						e.DurationMinutes, e.FocusRating, e.Notes)
				}
				return nil
			})
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "number of sessions")
	session.AddCommand(history)

	session.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every recorded session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				sessions, err := app.SessionCLI.List(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), sessions)
				}
				for _, s := range sessions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%dm\n",
						s.ID, s.SubjectID, s.StartTime.Local().Format("2006-01-02 15:04"), s.DurationMinutes)
				}
				return nil
			})
		},
	})
	return session
}

// optionalNotesFocus returns pointers only for the flags the user set.
func optionalNotesFocus(cmd *cobra.Command, notes *string, focus *int) (*string, *int) {
	var n *string
	var f *int
	if cmd.Flags().Changed("notes") {
		n = notes
	}
	if cmd.Flags().Changed("focus") {
		f = focus
	}
	return n, f
}
