package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"studyplan/internal/httpapi"
	analyticsinadapter "studyplan/internal/modules/analytics/adapter/in"
	analyticsin "studyplan/internal/modules/analytics/port/in"
	analyticsservice "studyplan/internal/modules/analytics/service"
	analyticsusecase "studyplan/internal/modules/analytics/usecase"
	goalinadapter "studyplan/internal/modules/goal/adapter/in"
	goaloutadapter "studyplan/internal/modules/goal/adapter/out"
	goaldomain "studyplan/internal/modules/goal/domain"
	goalin "studyplan/internal/modules/goal/port/in"
	goalservice "studyplan/internal/modules/goal/service"
	goalusecase "studyplan/internal/modules/goal/usecase"
	remoteinadapter "studyplan/internal/modules/remote/adapter/in"
	remoteout "studyplan/internal/modules/remote/port/out"
	remoteservice "studyplan/internal/modules/remote/service"
	remoteusecase "studyplan/internal/modules/remote/usecase"
	scheduleinadapter "studyplan/internal/modules/schedule/adapter/in"
	scheduleoutadapter "studyplan/internal/modules/schedule/adapter/out"
	scheduledomain "studyplan/internal/modules/schedule/domain"
	schedulein "studyplan/internal/modules/schedule/port/in"
	scheduleservice "studyplan/internal/modules/schedule/service"
	scheduleusecase "studyplan/internal/modules/schedule/usecase"
	sessioninadapter "studyplan/internal/modules/session/adapter/in"
	sessionoutadapter "studyplan/internal/modules/session/adapter/out"
	sessiondomain "studyplan/internal/modules/session/domain"
	sessionin "studyplan/internal/modules/session/port/in"
	sessionservice "studyplan/internal/modules/session/service"
	sessionusecase "studyplan/internal/modules/session/usecase"
	subjectinadapter "studyplan/internal/modules/subject/adapter/in"
	subjectoutadapter "studyplan/internal/modules/subject/adapter/out"
	subjectdomain "studyplan/internal/modules/subject/domain"
	subjectin "studyplan/internal/modules/subject/port/in"
	subjectservice "studyplan/internal/modules/subject/service"
	subjectusecase "studyplan/internal/modules/subject/usecase"
	"studyplan/internal/platform/clock"
	"studyplan/internal/platform/config"
	"studyplan/internal/platform/id"
	"studyplan/internal/platform/kvstore"
	"studyplan/internal/platform/logging"
	"studyplan/internal/platform/mirror"
	"studyplan/internal/platform/sqldb"
	uiapp "studyplan/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *zap.Logger

	SubjectCLI   subjectinadapter.CLIHandler
	SessionCLI   sessioninadapter.CLIHandler
	GoalCLI      goalinadapter.CLIHandler
	ScheduleCLI  scheduleinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	ReportCLI    analyticsinadapter.ReportHandler
	RemoteCLI    remoteinadapter.CLIHandler

	subjects  subjectin.Usecase
	sessions  sessionin.Usecase
	goals     goalin.Usecase
	schedule  schedulein.Usecase
	analytics analyticsin.Usecase

	kv     *kvstore.Store
	remote *sqldb.DB
}

// remoteTables holds the remote copies. Each field stays nil when the
// mirror is off so the collections fall back to local-only behaviour.
type remoteTables struct {
	subjects mirror.Store[subjectdomain.Subject]
	sessions mirror.Store[sessiondomain.Session]
	goals    mirror.Store[goaldomain.Goal]
	slots    mirror.Store[scheduledomain.Slot]
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	logger = logging.OrNop(logger)
	clk := clock.SystemClock{}
	ids := id.UUID{}

	kv, err := kvstore.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	app := &App{Config: cfg, Logger: logger, kv: kv}

	var tables remoteTables
	if cfg.RemoteEnabled() {
		db, remote, err := openRemote(ctx, cfg)
		if err != nil {
			logger.Warn("remote mirror unavailable, working from local data", zap.String("driver", cfg.Remote.Driver), zap.Error(err))
		} else {
			app.remote = db
			tables = remote
		}
	}

	subjectStore := mirror.New[subjectdomain.Subject]("subjects", subjectoutadapter.NewKVSubjectStore(kv, logger), tables.subjects, logger)
	sessionStore := mirror.New[sessiondomain.Session]("sessions", sessionoutadapter.NewKVSessionStore(kv, logger), tables.sessions, logger)
	goalStore := mirror.New[goaldomain.Goal]("goals", goaloutadapter.NewKVGoalStore(kv, logger), tables.goals, logger)
	slotStore := mirror.New[scheduledomain.Slot]("schedule", scheduleoutadapter.NewKVSlotStore(kv, logger), tables.slots, logger)

	app.subjects = subjectusecase.NewInteractor(subjectservice.NewSubjectService(ids, subjectStore))
	app.sessions = sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, sessionStore),
		app.subjects,
		sessionoutadapter.NewFileActiveTimerStore(cfg.ActiveTimerPath, logger),
	)
	app.goals = goalusecase.NewInteractor(goalservice.NewGoalService(clk, ids, goalStore))
	app.schedule = scheduleusecase.NewInteractor(scheduleservice.NewScheduleService(ids, slotStore), app.subjects)
	app.analytics = analyticsusecase.NewInteractor(analyticsservice.NewAnalyticsService(clk), app.subjects, app.sessions, app.goals)
	remoteUC := remoteusecase.NewInteractor(remoteservice.NewSyncService(
		[]remoteout.Collection{subjectStore, sessionStore, goalStore, slotStore},
		logger,
	))

	app.SubjectCLI = subjectinadapter.NewCLIHandler(app.subjects)
	app.SessionCLI = sessioninadapter.NewCLIHandler(app.sessions)
	app.GoalCLI = goalinadapter.NewCLIHandler(app.goals)
	app.ScheduleCLI = scheduleinadapter.NewCLIHandler(app.schedule)
	app.AnalyticsCLI = analyticsinadapter.NewCLIHandler(app.analytics)
	app.ReportCLI = analyticsinadapter.NewReportHandler(app.analytics)
	app.RemoteCLI = remoteinadapter.NewCLIHandler(remoteUC)
	return app, nil
}

func openRemote(ctx context.Context, cfg config.Config) (*sqldb.DB, remoteTables, error) {
	db, err := sqldb.Open(cfg.Remote.Driver, cfg.Remote.DSN)
	if err != nil {
		return nil, remoteTables{}, err
	}
	var tables remoteTables
	subjects, err := subjectoutadapter.NewSQLSubjectMirror(ctx, db, cfg.UserID)
	if err != nil {
		_ = db.Close()
		return nil, remoteTables{}, err
	}
	sessions, err := sessionoutadapter.NewSQLSessionMirror(ctx, db, cfg.UserID)
	if err != nil {
		_ = db.Close()
		return nil, remoteTables{}, err
	}
	goals, err := goaloutadapter.NewSQLGoalMirror(ctx, db, cfg.UserID)
	if err != nil {
		_ = db.Close()
		return nil, remoteTables{}, err
	}
	slots, err := scheduleoutadapter.NewSQLSlotMirror(ctx, db, cfg.UserID)
	if err != nil {
		_ = db.Close()
		return nil, remoteTables{}, err
	}
	tables.subjects, tables.sessions, tables.goals, tables.slots = subjects, sessions, goals, slots
	return db, tables, nil
}

// HTTPHandler is the JSON API over the app's usecases.
func (a *App) HTTPHandler() http.Handler {
	return httpapi.NewRouter(httpapi.Deps{
		Subjects:  a.subjects,
		Sessions:  a.sessions,
		Goals:     a.goals,
		Schedule:  a.schedule,
		Analytics: a.analytics,
		Logger:    a.Logger,
	})
}

// ClearLocal drops every planner collection from the local store. The
// remote copy, when configured, is left alone.
func (a *App) ClearLocal(ctx context.Context) error {
	return a.kv.ClearAll(ctx)
}

func (a *App) Close() error {
	var errs []error
	if a.remote != nil {
		errs = append(errs, a.remote.Close())
	}
	errs = append(errs, a.kv.Close())
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.AnalyticsCLI, app.SubjectCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
