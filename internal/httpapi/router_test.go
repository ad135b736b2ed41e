package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studyplan/internal/bootstrap"
	"studyplan/internal/platform/config"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	app, err := bootstrap.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app.HTTPHandler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := do(t, newServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSubjectAndSessionFlow(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/subjects", map[string]any{"name": "Physics", "targetHoursPerWeek": 3.5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	subject := decodeBody[map[string]any](t, rec)
	id, _ := subject["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, 0.5, subject["dailyTarget"])

	rec = do(t, h, http.MethodGet, "/api/subjects/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/sessions", map[string]any{"subjectId": id, "durationMinutes": 30, "focusRating": 5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/sessions/history?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeBody[[]map[string]any](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, "Physics", history[0]["subjectName"])

	rec = do(t, h, http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[map[string]any](t, rec)
	assert.Equal(t, 0.5, stats["totalHours"])
	assert.Equal(t, float64(1), stats["totalSessions"])

	rec = do(t, h, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/subjects/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/subjects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoalToggle(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/goals", map[string]any{"title": "Read chapter 3"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goal := decodeBody[map[string]any](t, rec)
	id := goal["id"].(string)

	rec = do(t, h, http.MethodPost, "/api/goals/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody[map[string]any](t, rec)["completed"])

	rec = do(t, h, http.MethodGet, "/api/goals?filter=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/goals?filter=active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]map[string]any](t, rec))
}

func TestErrorMapping(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing name", http.MethodPost, "/api/subjects", map[string]any{"name": ""}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/subjects", map[string]any{"title": "x"}, http.StatusBadRequest},
		{"missing subject", http.MethodPost, "/api/sessions", map[string]any{"durationMinutes": 30}, http.StatusBadRequest},
		{"unknown subject", http.MethodPost, "/api/sessions", map[string]any{"subjectId": "x", "durationMinutes": 30}, http.StatusNotFound},
		{"no timer", http.MethodGet, "/api/timer", nil, http.StatusNotFound},
		{"unknown goal", http.MethodPost, "/api/goals/nope/toggle", nil, http.StatusNotFound},
		{"bad filter", http.MethodGet, "/api/goals?filter=later", nil, http.StatusBadRequest},
		{"bad range", http.MethodGet, "/api/analytics/advanced?range=1y", nil, http.StatusBadRequest},
		{"bad day", http.MethodGet, "/api/schedule?day=someday", nil, http.StatusBadRequest},
		{"bad limit", http.MethodGet, "/api/sessions/history?limit=-1", nil, http.StatusBadRequest},
		{"wrong method", http.MethodPut, "/api/subjects", nil, http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}
