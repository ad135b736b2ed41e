package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	goaldto "studyplan/internal/modules/goal/dto"
	scheduledto "studyplan/internal/modules/schedule/dto"
	sessiondto "studyplan/internal/modules/session/dto"
	subjectdto "studyplan/internal/modules/subject/dto"
	apperrors "studyplan/internal/platform/errors"
)

const maxBody = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrSessionTooShort):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrNoActiveTimer):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrTimerActive):
		status = http.StatusConflict
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) listSubjects(w http.ResponseWriter, r *http.Request) {
	out, err := s.Subjects.ListSubjects(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type addSubjectRequest struct {
	Name               string   `json:"name"`
	Color              string   `json:"color"`
	Difficulty         int      `json:"difficulty"`
	Priority           int      `json:"priority"`
	TargetHoursPerWeek *float64 `json:"targetHoursPerWeek"`
	TargetHoursPerDay  *float64 `json:"targetHoursPerDay"`
}

func (s *server) addSubject(w http.ResponseWriter, r *http.Request) {
	var req addSubjectRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.Subjects.AddSubject(r.Context(), subjectdto.AddSubjectInput{
		Name:               req.Name,
		Color:              req.Color,
		Difficulty:         req.Difficulty,
		Priority:           req.Priority,
		TargetHoursPerWeek: req.TargetHoursPerWeek,
		TargetHoursPerDay:  req.TargetHoursPerDay,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *server) getSubject(w http.ResponseWriter, r *http.Request) {
	out, err := s.Subjects.GetSubject(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) deleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := s.Subjects.DeleteSubject(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) listSessions(w http.ResponseWriter, r *http.Request) {
	out, err := s.Sessions.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) sessionHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.fail(w, r, fmt.Errorf("%w: limit must be a non-negative integer", apperrors.ErrInvalidInput))
			return
		}
		limit = n
	}
	out, err := s.Sessions.History(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type logSessionRequest struct {
	SubjectID       string     `json:"subjectId"`
	StartTime       *time.Time `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	FocusRating     int        `json:"focusRating"`
	Notes           string     `json:"notes"`
}

func (s *server) logSession(w http.ResponseWriter, r *http.Request) {
	var req logSessionRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	input := sessiondto.LogInput{
		SubjectID:       req.SubjectID,
		DurationMinutes: req.DurationMinutes,
		FocusRating:     req.FocusRating,
		Notes:           req.Notes,
	}
	if req.StartTime != nil {
		input.StartTime = *req.StartTime
	}
	out, err := s.Sessions.Log(r.Context(), input)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) timerStatus(w http.ResponseWriter, r *http.Request) {
	out, err := s.Sessions.Status(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) listGoals(w http.ResponseWriter, r *http.Request) {
	out, err := s.Goals.ListGoals(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type addGoalRequest struct {
	SubjectID        string     `json:"subjectId"`
	SubjectIDs       []string   `json:"subjectIds"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TargetDate       *time.Time `json:"targetDate"`
	IsExam           bool       `json:"isExam"`
	ExamDate         *time.Time `json:"examDate"`
	ExamTime         string     `json:"examTime"`
	ExamLocation     string     `json:"examLocation"`
	StudyHoursTarget float64    `json:"studyHoursTarget"`
}

func (s *server) addGoal(w http.ResponseWriter, r *http.Request) {
	var req addGoalRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.Goals.AddGoal(r.Context(), goaldto.AddGoalInput(req))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *server) toggleGoal(w http.ResponseWriter, r *http.Request) {
	out, err := s.Goals.ToggleGoal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.Goals.DeleteGoal(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) listSchedule(w http.ResponseWriter, r *http.Request) {
	input := scheduledto.ListSlotsInput{}
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := scheduledto.ParseDay(raw)
		if err != nil {
			s.fail(w, r, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
			return
		}
		input.Day = &day
	}
	out, err := s.Schedule.ListSlots(r.Context(), input)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) stats(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.Stats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) insights(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.Insights(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) weekly(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.WeeklyProgress(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) daily(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.DailyCompletion(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) subjectProgress(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.WeeklySubjectProgress(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) advanced(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.Advanced(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) dashboard(w http.ResponseWriter, r *http.Request) {
	out, err := s.Analytics.Dashboard(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
