package out

import (
	"context"

	"studyplan/internal/modules/schedule/domain"
	scheduleout "studyplan/internal/modules/schedule/port/out"
	"studyplan/internal/platform/mirror"
	"studyplan/internal/platform/sqldb"
)

var slotTable = mirror.TableSpec[domain.Slot]{
	Name:        "schedule_slots",
	Columns:     []string{"id", "subject_id", "day_of_week", "start_time", "end_time", "is_active"},
	ColumnTypes: []string{"TEXT NOT NULL", "TEXT NOT NULL", "INTEGER NOT NULL", "TEXT NOT NULL", "TEXT NOT NULL", "BOOLEAN NOT NULL"},
	Values: func(s domain.Slot) []any {
		return []any{s.ID, s.SubjectID, s.DayOfWeek, s.StartTime, s.EndTime, s.IsActive}
	},
	Scan: func(scan mirror.Scanner) (domain.Slot, error) {
		var s domain.Slot
		err := scan(&s.ID, &s.SubjectID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.IsActive)
		return s, err
	},
}

func NewSQLSlotMirror(ctx context.Context, db *sqldb.DB, userID string) (scheduleout.SlotStore, error) {
	return mirror.NewTable(ctx, db, userID, slotTable)
}
