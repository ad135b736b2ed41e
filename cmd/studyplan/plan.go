package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyplan/internal/bootstrap"
	goaldto "studyplan/internal/modules/goal/dto"
)

const dateLayout = "2006-01-02"

func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a date like 2006-01-02: %w", flag, err)
	}
	return &t, nil
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals and exams"}

	var subjects []string
	var description, due, examDate, examTime, location string
	var exam bool
	var hours float64

	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal or exam",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := goaldto.AddGoalInput{
				SubjectIDs:       subjects,
				Title:            args[0],
				Description:      description,
				IsExam:           exam,
				ExamTime:         examTime,
				ExamLocation:     location,
				StudyHoursTarget: hours,
			}
			if len(subjects) > 0 {
				input.SubjectID = subjects[0]
			}
			var err error
			if input.TargetDate, err = parseDate("due", due); err != nil {
				return err
			}
			if input.ExamDate, err = parseDate("exam-date", examDate); err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added goal %s (%s)\n", out.Title, out.ID)
				return nil
			})
		},
	}
	add.Flags().StringSliceVar(&subjects, "subject", nil, "linked subject id (repeatable)")
	add.Flags().StringVar(&description, "description", "", "goal description")
	add.Flags().StringVar(&due, "due", "", "target date YYYY-MM-DD")
	add.Flags().BoolVar(&exam, "exam", false, "the goal is an exam")
	add.Flags().StringVar(&examDate, "exam-date", "", "exam date YYYY-MM-DD")
	add.Flags().StringVar(&examTime, "exam-time", "", "exam time HH:MM")
	add.Flags().StringVar(&location, "location", "", "exam location")
	add.Flags().Float64Var(&hours, "hours", 0, "study hours target")
	goal.AddCommand(add)

	goal.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a goal done or open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				state := "open"
				if out.Completed {
					state = "completed"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", out.Title, state)
				return nil
			})
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.GoalCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				goals, err := app.GoalCLI.List(ctx, filter)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), goals)
				}
				if len(goals) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
					return nil
				}
				for _, g := range goals {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), goalLine(g))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&filter, "filter", "all", "all|active|completed|exams")
	goal.AddCommand(list)
	return goal
}

func goalLine(g goaldto.GoalOutput) string {
	mark := "[ ]"
	if g.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s\t%s", mark, g.ID, g.Title)
	switch {
	case g.IsExam && g.ExamDate != nil:
		line += "\texam " + g.ExamDate.Format(dateLayout)
		if g.ExamTime != "" {
			line += " " + g.ExamTime
		}
	case g.TargetDate != nil:
		line += "\tdue " + g.TargetDate.Format(dateLayout)
	}
	return line
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	schedule := &cobra.Command{Use: "schedule", Short: "Weekly study slots"}

	schedule.AddCommand(&cobra.Command{
		Use:   "add <subject-id> <day> <start> <end>",
		Short: "Add a weekly slot, e.g. add <id> mon 09:00 10:30",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ScheduleCLI.Add(ctx, args[0], args[1], args[2], args[3])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added slot %s: %s %s-%s\n", out.ID, out.Day, out.StartTime, out.EndTime)
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a slot on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ScheduleCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "slot %s active=%t\n", out.ID, out.IsActive)
				return nil
			})
		},
	})

	schedule.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ScheduleCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	var day string
	list := &cobra.Command{
		Use:   "list",
		Short: "List slots by day and start time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				slots, err := app.ScheduleCLI.List(ctx, day)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), slots)
				}
				if len(slots) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no slots")
					return nil
				}
				for _, s := range slots {
					state := ""
					if !s.IsActive {
						state = "\t(off)"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-9s %s-%s\t%s%s\n",
						s.ID, s.Day, s.StartTime, s.EndTime, s.SubjectID, state)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&day, "day", "", "only this weekday (name or 0-6)")
	schedule.AddCommand(list)
	return schedule
}
