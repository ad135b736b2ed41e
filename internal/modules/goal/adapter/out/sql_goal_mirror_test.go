package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	goalout "studyplan/internal/modules/goal/adapter/out"
	"studyplan/internal/modules/goal/domain"
	"studyplan/internal/platform/sqldb"
)

func TestSQLGoalMirrorRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := sqldb.OpenSQLiteFile(filepath.Join(t.TempDir(), "remote.db"))
	if err != nil {
		t.Fatalf("open remote: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	table, err := goalout.NewSQLGoalMirror(ctx, db, "user-1")
	if err != nil {
		t.Fatalf("new mirror: %v", err)
	}
	examDate := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	doneAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	goals := []domain.Goal{
		{ID: "g1", Title: "Chapter 5", SubjectID: "math", Completed: true, CompletedAt: &doneAt},
		{ID: "g2", Title: "Final", SubjectIDs: []string{"chem", "bio"}, IsExam: true, ExamDate: &examDate, ExamTime: "10:00", ExamLocation: "Hall A", StudyHoursTarget: 12.5},
	}
	if err := table.Save(ctx, goals); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := table.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(goals, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLGoalMirrorExamWithoutDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := sqldb.OpenSQLiteFile(filepath.Join(t.TempDir(), "remote.db"))
	if err != nil {
		t.Fatalf("open remote: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	table, err := goalout.NewSQLGoalMirror(ctx, db, "user-1")
	if err != nil {
		t.Fatalf("new mirror: %v", err)
	}
	examDate := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	if err := table.Save(ctx, []domain.Goal{{ID: "g1", Title: "Final", IsExam: true, ExamDate: &examDate}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO study_goals
		(user_id, position, id, subject_id, subject_ids, title, description, target_date, completed, completed_at,
		 is_exam, exam_date, exam_time, exam_location, study_hours_target)
		VALUES ('user-1', 1, 'g2', NULL, '[]', 'Oral', '', NULL, 0, NULL, 1, NULL, '', '', 0)`); err != nil {
		t.Fatalf("insert undated exam: %v", err)
	}
	loaded, err := table.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	exams := domain.FilterExams.Apply(loaded)
	if len(exams) != 2 || exams[0].ID != "g1" || exams[1].ID != "g2" || exams[1].ExamDate != nil {
		t.Fatalf("unexpected exams %+v", exams)
	}
}
