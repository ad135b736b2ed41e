package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	sessionout "studyplan/internal/modules/session/adapter/out"
	"studyplan/internal/modules/session/domain"
	sessiondto "studyplan/internal/modules/session/dto"
	sessionin "studyplan/internal/modules/session/port/in"
	sessionport "studyplan/internal/modules/session/port/out"
	"studyplan/internal/modules/session/service"
	"studyplan/internal/modules/session/usecase"
	subjectdto "studyplan/internal/modules/subject/dto"
	apperrors "studyplan/internal/platform/errors"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "sess-" + strconv.Itoa(s.n)
}

type memSessions struct {
	mu       sync.Mutex
	sessions []domain.Session
}

func (m *memSessions) Load(context.Context) ([]domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Session(nil), m.sessions...), nil
}

func (m *memSessions) Save(_ context.Context, sessions []domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append([]domain.Session(nil), sessions...)
	return nil
}

type fakeSubjects struct {
	subjects []subjectdto.SubjectOutput
}

func (f fakeSubjects) AddSubject(context.Context, subjectdto.AddSubjectInput) (subjectdto.SubjectOutput, error) {
	return subjectdto.SubjectOutput{}, errors.New("not implemented")
}

func (f fakeSubjects) UpdateSubject(context.Context, subjectdto.UpdateSubjectInput) (subjectdto.SubjectOutput, error) {
	return subjectdto.SubjectOutput{}, errors.New("not implemented")
}

func (f fakeSubjects) DeleteSubject(context.Context, string) error {
	return errors.New("not implemented")
}

func (f fakeSubjects) ListSubjects(context.Context) ([]subjectdto.SubjectOutput, error) {
	return f.subjects, nil
}

func (f fakeSubjects) GetSubject(_ context.Context, id string) (subjectdto.SubjectOutput, error) {
	for _, s := range f.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return subjectdto.SubjectOutput{}, apperrors.ErrNotFound
}

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc        sessionin.Usecase
	clock     *manualClock
	sessions  *memSessions
	timerPath string
}

var testSubjects = fakeSubjects{subjects: []subjectdto.SubjectOutput{
	{ID: "math", Name: "Mathematics", Color: "#3b82f6"},
	{ID: "chem", Name: "Chemistry", Color: "#10b981"},
}}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clk := &manualClock{now: start}
	sessions := &memSessions{}
	timerPath := filepath.Join(t.TempDir(), ".studyplan", "active-timer.json")
	active := sessionout.NewFileActiveTimerStore(timerPath, zap.NewNop())
	svc := service.NewSessionService(clk, &seqID{}, sessions)
	return fixture{uc: usecase.NewInteractor(svc, testSubjects, active), clock: clk, sessions: sessions, timerPath: timerPath}
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestStartPauseResumeStop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	started, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.SubjectName != "Mathematics" || started.Clock != "00:00:00" {
		t.Fatalf("unexpected start output: %+v", started)
	}

	f.clock.Advance(10 * time.Minute)
	paused, err := f.uc.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !paused.Paused || paused.ElapsedSeconds != 600 {
		t.Fatalf("unexpected pause output: %+v", paused)
	}

	f.clock.Advance(30 * time.Minute)
	status, err := f.uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.ElapsedSeconds != 600 {
		t.Fatalf("paused time counted: %+v", status)
	}

	if _, err := f.uc.Resume(ctx); err != nil {
		t.Fatalf("resume: %v", err)
	}
	f.clock.Advance(15*time.Minute + 20*time.Second)

	out, err := f.uc.Stop(ctx, sessiondto.StopInput{Notes: strPtr("chapter 4"), FocusRating: intPtr(4)})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if out.ID != started.ID || out.DurationMinutes != 25 || out.FocusRating != 4 || out.Notes != "chapter 4" || !out.Completed {
		t.Fatalf("unexpected session: %+v", out)
	}
	if !out.StartTime.Equal(start) || out.EndTime == nil || !out.EndTime.Equal(start.Add(55*time.Minute+20*time.Second)) {
		t.Fatalf("unexpected bounds: %+v", out)
	}
	if _, err := f.uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected timer cleared, got %v", err)
	}
	if len(f.sessions.sessions) != 1 {
		t.Fatalf("expected one persisted session, got %d", len(f.sessions.sessions))
	}
}

func TestStartRejectsSecondTimerAndUnknownSubject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty subject, got %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "history"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown subject, got %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "chem"}); !errors.Is(err, apperrors.ErrTimerActive) {
		t.Fatalf("expected timer active, got %v", err)
	}
}

func TestStopUnderOneMinuteKeepsTimer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(59 * time.Second)
	if _, err := f.uc.Stop(ctx, sessiondto.StopInput{}); !errors.Is(err, apperrors.ErrSessionTooShort) {
		t.Fatalf("expected too short, got %v", err)
	}
	status, err := f.uc.Status(ctx)
	if err != nil {
		t.Fatalf("timer should still run: %v", err)
	}
	if status.Clock != "00:00:59" {
		t.Fatalf("unexpected clock %q", status.Clock)
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("nothing should be recorded")
	}

	f.clock.Advance(time.Second)
	out, err := f.uc.Stop(ctx, sessiondto.StopInput{})
	if err != nil {
		t.Fatalf("stop at one minute: %v", err)
	}
	if out.DurationMinutes != 1 || out.FocusRating != domain.DefaultFocusRating {
		t.Fatalf("unexpected session: %+v", out)
	}
}

func TestPauseResumeErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.uc.Pause(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected no active timer, got %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.uc.Resume(ctx); !errors.Is(err, apperrors.ErrTimerNotPaused) {
		t.Fatalf("expected not paused, got %v", err)
	}
	if _, err := f.uc.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := f.uc.Pause(ctx); !errors.Is(err, apperrors.ErrTimerPaused) {
		t.Fatalf("expected already paused, got %v", err)
	}
}

func TestAnnotateRejectsBadFocusAndDiscardDropsTimer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "chem"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.uc.Annotate(ctx, sessiondto.AnnotateInput{FocusRating: intPtr(6)}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid focus, got %v", err)
	}
	annotated, err := f.uc.Annotate(ctx, sessiondto.AnnotateInput{Notes: strPtr("titration"), FocusRating: intPtr(2)})
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if annotated.Notes != "titration" || annotated.FocusRating != 2 {
		t.Fatalf("annotation not kept: %+v", annotated)
	}
	if err := f.uc.Discard(ctx); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if err := f.uc.Discard(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected no active timer, got %v", err)
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("discard must not record a session")
	}
}

func TestLogAndHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.uc.Log(ctx, sessiondto.LogInput{SubjectID: "math", DurationMinutes: 0}); !errors.Is(err, apperrors.ErrSessionTooShort) {
		t.Fatalf("expected too short, got %v", err)
	}
	if _, err := f.uc.Log(ctx, sessiondto.LogInput{SubjectID: "math", DurationMinutes: 30, FocusRating: 9}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid focus, got %v", err)
	}

	older, err := f.uc.Log(ctx, sessiondto.LogInput{SubjectID: "math", StartTime: start.Add(-48 * time.Hour), DurationMinutes: 45})
	if err != nil {
		t.Fatalf("log older: %v", err)
	}
	if older.FocusRating != domain.DefaultFocusRating {
		t.Fatalf("default focus not applied: %+v", older)
	}
	latest, err := f.uc.Log(ctx, sessiondto.LogInput{SubjectID: "chem", DurationMinutes: 30, FocusRating: 5})
	if err != nil {
		t.Fatalf("log latest: %v", err)
	}
	if !latest.StartTime.Equal(start.Add(-30 * time.Minute)) {
		t.Fatalf("start should default to now minus duration: %v", latest.StartTime)
	}

	// A session whose subject was deleted afterwards.
	f.sessions.sessions = append(f.sessions.sessions, domain.Session{
		ID: "orphan", SubjectID: "gone", StartTime: start.Add(-72 * time.Hour), DurationMinutes: 20, Completed: true,
	})

	history, err := f.uc.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	if history[0].ID != latest.ID || history[0].SubjectName != "Chemistry" {
		t.Fatalf("newest first expected, got %+v", history[0])
	}
	if history[2].SubjectName != "Unknown Subject" || history[2].SubjectColor != "#6b7280" {
		t.Fatalf("unknown subject fallback missing: %+v", history[2])
	}

	limited, err := f.uc.History(ctx, 1)
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}

	if err := f.uc.Delete(ctx, older.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.uc.Delete(ctx, older.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	all, err := f.uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sessions after delete, got %d", len(all))
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(5 * time.Second)

	updates, err := f.uc.Watch(ctx, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	first := <-updates
	if first.Clock != "00:00:05" {
		t.Fatalf("unexpected first reading %q", first.Clock)
	}
	f.clock.Advance(time.Second)
	select {
	case next := <-updates:
		if next.ElapsedSeconds < 5 {
			t.Fatalf("elapsed went backwards: %+v", next)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no tick received")
	}

	cancel()
	for range updates {
	}
}

func TestWatchWithoutTimer(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	if _, err := f.uc.Watch(context.Background(), time.Second); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("expected no active timer, got %v", err)
	}
}

func TestCorruptTimerFileRecovers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if err := os.MkdirAll(filepath.Dir(f.timerPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(f.timerPath, []byte("{trunc"), 0o644); err != nil {
		t.Fatalf("write corrupt timer: %v", err)
	}
	if _, err := f.uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("corrupt file should read as no timer, got %v", err)
	}
	if err := f.uc.Discard(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("discard of corrupt timer: %v", err)
	}
	if _, err := os.Stat(f.timerPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("discard should remove the timer file, stat err %v", err)
	}
	if _, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start after discard: %v", err)
	}
}

func TestStartOverwritesCorruptTimerFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	if err := os.MkdirAll(filepath.Dir(f.timerPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(f.timerPath, []byte("{trunc"), 0o644); err != nil {
		t.Fatalf("write corrupt timer: %v", err)
	}
	started, err := f.uc.Start(ctx, sessiondto.StartInput{SubjectID: "chem"})
	if err != nil {
		t.Fatalf("start over corrupt file: %v", err)
	}
	status, err := f.uc.Status(ctx)
	if err != nil || status.ID != started.ID {
		t.Fatalf("expected the new timer, got %+v %v", status, err)
	}
}

// flakyClear fails the first ClearActive call.
type flakyClear struct {
	sessionport.ActiveTimerStore
	failed bool
}

func (f *flakyClear) ClearActive(ctx context.Context) error {
	if !f.failed {
		f.failed = true
		return errors.New("disk full")
	}
	return f.ActiveTimerStore.ClearActive(ctx)
}

func TestStopRetriedAfterClearFailureRecordsOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := &manualClock{now: start}
	sessions := &memSessions{}
	active := &flakyClear{ActiveTimerStore: sessionout.NewFileActiveTimerStore(filepath.Join(t.TempDir(), "active-timer.json"), zap.NewNop())}
	uc := usecase.NewInteractor(service.NewSessionService(clk, &seqID{}, sessions), testSubjects, active)

	if _, err := uc.Start(ctx, sessiondto.StartInput{SubjectID: "math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.Advance(20 * time.Minute)
	if _, err := uc.Stop(ctx, sessiondto.StopInput{}); err == nil {
		t.Fatalf("expected clear failure")
	}
	clk.Advance(time.Minute)
	out, err := uc.Stop(ctx, sessiondto.StopInput{})
	if err != nil {
		t.Fatalf("retried stop: %v", err)
	}
	if out.DurationMinutes != 20 {
		t.Fatalf("retry should return the recorded session, got %+v", out)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session after retry, got %d", len(sessions.sessions))
	}
	if _, err := uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveTimer) {
		t.Fatalf("timer should be cleared, got %v", err)
	}
}
