package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"studyplan/internal/modules/session/domain"
	sessionout "studyplan/internal/modules/session/port/out"
	"studyplan/internal/platform/mirror"
	"studyplan/internal/platform/sqldb"
)

var sessionTable = mirror.TableSpec[domain.Session]{
	Name:        "study_sessions",
	Columns:     []string{"id", "subject_id", "start_time", "end_time", "duration_minutes", "focus_rating", "notes", "completed"},
	ColumnTypes: []string{"TEXT NOT NULL", "TEXT NOT NULL", "TEXT NOT NULL", "TEXT", "INTEGER NOT NULL", "INTEGER", "TEXT NOT NULL", "BOOLEAN NOT NULL"},
	Values: func(s domain.Session) []any {
		var end sql.NullString
		if s.EndTime != nil {
			end = sql.NullString{String: s.EndTime.Format(time.RFC3339Nano), Valid: true}
		}
		var focus sql.NullInt64
		if s.FocusRating != 0 {
			focus = sql.NullInt64{Int64: int64(s.FocusRating), Valid: true}
		}
		return []any{s.ID, s.SubjectID, s.StartTime.Format(time.RFC3339Nano), end, s.DurationMinutes, focus, s.Notes, s.Completed}
	},
	Scan: func(scan mirror.Scanner) (domain.Session, error) {
		var s domain.Session
		var start string
		var end sql.NullString
		var focus sql.NullInt64
		if err := scan(&s.ID, &s.SubjectID, &start, &end, &s.DurationMinutes, &focus, &s.Notes, &s.Completed); err != nil {
			return domain.Session{}, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, start)
		if err != nil {
			return domain.Session{}, fmt.Errorf("parse start_time: %w", err)
		}
		s.StartTime = parsed
		if end.Valid {
			endTime, err := time.Parse(time.RFC3339Nano, end.String)
			if err != nil {
				return domain.Session{}, fmt.Errorf("parse end_time: %w", err)
			}
			s.EndTime = &endTime
		}
		if focus.Valid {
			s.FocusRating = int(focus.Int64)
		}
		return s, nil
	},
}

// NewSQLSessionMirror is the remote sessions table for one user.
func NewSQLSessionMirror(ctx context.Context, db *sqldb.DB, userID string) (sessionout.SessionStore, error) {
	return mirror.NewTable(ctx, db, userID, sessionTable)
}
