package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"studyplan/internal/modules/goal/domain"
	goalout "studyplan/internal/modules/goal/port/out"
	"studyplan/internal/platform/mirror"
	"studyplan/internal/platform/sqldb"
)

var goalTable = mirror.TableSpec[domain.Goal]{
	Name: "study_goals",
	Columns: []string{
		"id", "subject_id", "subject_ids", "title", "description", "target_date",
		"completed", "completed_at", "is_exam", "exam_date", "exam_time", "exam_location", "study_hours_target",
	},
	ColumnTypes: []string{
		"TEXT NOT NULL", "TEXT", "TEXT NOT NULL", "TEXT NOT NULL", "TEXT NOT NULL", "TEXT",
		"BOOLEAN NOT NULL", "TEXT", "BOOLEAN NOT NULL", "TEXT", "TEXT NOT NULL", "TEXT NOT NULL", "DOUBLE PRECISION NOT NULL",
	},
	Values: func(g domain.Goal) []any {
		ids := g.SubjectIDs
		if ids == nil {
			ids = []string{}
		}
		// Marshalling a string slice cannot fail.
		encoded, _ := json.Marshal(ids)
		var subjectID sql.NullString
		if g.SubjectID != "" {
			subjectID = sql.NullString{String: g.SubjectID, Valid: true}
		}
		return []any{
			g.ID, subjectID, string(encoded), g.Title, g.Description, nullTime(g.TargetDate),
			g.Completed, nullTime(g.CompletedAt), g.IsExam, nullTime(g.ExamDate), g.ExamTime, g.ExamLocation, g.StudyHoursTarget,
		}
	},
	Scan: func(scan mirror.Scanner) (domain.Goal, error) {
		var g domain.Goal
		var subjectID, target, completedAt, examDate sql.NullString
		var ids string
		if err := scan(
			&g.ID, &subjectID, &ids, &g.Title, &g.Description, &target,
			&g.Completed, &completedAt, &g.IsExam, &examDate, &g.ExamTime, &g.ExamLocation, &g.StudyHoursTarget,
		); err != nil {
			return domain.Goal{}, err
		}
		g.SubjectID = subjectID.String
		if err := json.Unmarshal([]byte(ids), &g.SubjectIDs); err != nil {
			return domain.Goal{}, fmt.Errorf("decode subject_ids: %w", err)
		}
		if len(g.SubjectIDs) == 0 {
			g.SubjectIDs = nil
		}
		var err error
		if g.TargetDate, err = parseNullTime(target); err != nil {
			return domain.Goal{}, err
		}
		if g.CompletedAt, err = parseNullTime(completedAt); err != nil {
			return domain.Goal{}, err
		}
		if g.ExamDate, err = parseNullTime(examDate); err != nil {
			return domain.Goal{}, err
		}
		return g, nil
	},
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func parseNullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil, fmt.Errorf("parse time %q: %w", v.String, err)
	}
	return &t, nil
}

// NewSQLGoalMirror is the remote goals table for one user.
func NewSQLGoalMirror(ctx context.Context, db *sqldb.DB, userID string) (goalout.GoalStore, error) {
	return mirror.NewTable(ctx, db, userID, goalTable)
}
