// Package httpapi serves the planner over a small JSON API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	analyticsin "studyplan/internal/modules/analytics/port/in"
	goalin "studyplan/internal/modules/goal/port/in"
	schedulein "studyplan/internal/modules/schedule/port/in"
	sessionin "studyplan/internal/modules/session/port/in"
	subjectin "studyplan/internal/modules/subject/port/in"
	"studyplan/internal/platform/logging"
)

type Deps struct {
	Subjects  subjectin.Usecase
	Sessions  sessionin.Usecase
	Goals     goalin.Usecase
	Schedule  schedulein.Usecase
	Analytics analyticsin.Usecase
	Logger    *zap.Logger
}

type server struct {
	Deps
	logger *zap.Logger
}

func NewRouter(deps Deps) *mux.Router {
	s := &server{Deps: deps, logger: logging.OrNop(deps.Logger)}
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/subjects", s.listSubjects).Methods(http.MethodGet)
	api.HandleFunc("/subjects", s.addSubject).Methods(http.MethodPost)
	api.HandleFunc("/subjects/{id}", s.getSubject).Methods(http.MethodGet)
	api.HandleFunc("/subjects/{id}", s.deleteSubject).Methods(http.MethodDelete)

	api.HandleFunc("/sessions", s.listSessions).Methods(http.MethodGet)
	api.HandleFunc("/sessions", s.logSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/history", s.sessionHistory).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.deleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/timer", s.timerStatus).Methods(http.MethodGet)

	api.HandleFunc("/goals", s.listGoals).Methods(http.MethodGet)
	api.HandleFunc("/goals", s.addGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id}/toggle", s.toggleGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id}", s.deleteGoal).Methods(http.MethodDelete)

	api.HandleFunc("/schedule", s.listSchedule).Methods(http.MethodGet)

	api.HandleFunc("/analytics/stats", s.stats).Methods(http.MethodGet)
	api.HandleFunc("/analytics/insights", s.insights).Methods(http.MethodGet)
	api.HandleFunc("/analytics/weekly", s.weekly).Methods(http.MethodGet)
	api.HandleFunc("/analytics/daily", s.daily).Methods(http.MethodGet)
	api.HandleFunc("/analytics/subjects", s.subjectProgress).Methods(http.MethodGet)
	api.HandleFunc("/analytics/advanced", s.advanced).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", s.dashboard).Methods(http.MethodGet)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}
