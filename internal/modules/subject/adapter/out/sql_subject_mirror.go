package out

import (
	"context"
	"database/sql"

	"studyplan/internal/modules/subject/domain"
	subjectout "studyplan/internal/modules/subject/port/out"
	"studyplan/internal/platform/mirror"
	"studyplan/internal/platform/sqldb"
)

var subjectTable = mirror.TableSpec[domain.Subject]{
	Name:        "subjects",
	Columns:     []string{"id", "name", "color", "difficulty", "priority", "target_hours_per_week", "target_hours_per_day"},
	ColumnTypes: []string{"TEXT NOT NULL", "TEXT NOT NULL", "TEXT NOT NULL", "INTEGER NOT NULL", "INTEGER NOT NULL", "DOUBLE PRECISION NOT NULL", "DOUBLE PRECISION"},
	Values: func(s domain.Subject) []any {
		var daily sql.NullFloat64
		if s.TargetHoursPerDay != nil {
			daily = sql.NullFloat64{Float64: *s.TargetHoursPerDay, Valid: true}
		}
		return []any{s.ID, s.Name, s.Color, s.Difficulty, s.Priority, s.TargetHoursPerWeek, daily}
	},
	Scan: func(scan mirror.Scanner) (domain.Subject, error) {
		var s domain.Subject
		var daily sql.NullFloat64
		if err := scan(&s.ID, &s.Name, &s.Color, &s.Difficulty, &s.Priority, &s.TargetHoursPerWeek, &daily); err != nil {
			return domain.Subject{}, err
		}
		if daily.Valid {
			v := daily.Float64
			s.TargetHoursPerDay = &v
		}
		return s, nil
	},
}

// NewSQLSubjectMirror is the remote subjects table for one user.
func NewSQLSubjectMirror(ctx context.Context, db *sqldb.DB, userID string) (subjectout.SubjectStore, error) {
	return mirror.NewTable(ctx, db, userID, subjectTable)
}
