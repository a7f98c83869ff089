package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmorales/ciclofit/internal/docstore"
	"github.com/jmorales/ciclofit/internal/gym"
	"github.com/jmorales/ciclofit/internal/testhelpers"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	store, err := docstore.NewSQLite(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return &application{
		logger:     logger,
		gymService: gym.NewService(store, logger),
	}
}

func do(t *testing.T, app *application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)
	return rec
}

func TestHealthy(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	rec := do(t, app, http.MethodGet, "/api/healthy", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}

func TestCycleEndpoints(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	// No cycle yet.
	rec := do(t, app, http.MethodGet, "/api/v1/users/u1/cycle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var check gym.CycleCheck
	if err := json.NewDecoder(rec.Body).Decode(&check); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if check.Status != gym.StatusNoCycle {
		t.Errorf("status = %q, want no_cycle", check.Status)
	}

	// Start a cycle from an evaluation.
	eval := `{"goal":"hipertrofia","experience":"intermedio","daysPerWeek":4,"equipment":"gym_completo","sessionDuration":60,"priorityMuscles":["pecho"],"injuryNotes":""}`
	rec = do(t, app, http.MethodPost, "/api/v1/users/u1/cycle", eval)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var cycle gym.Cycle
	if err := json.NewDecoder(rec.Body).Decode(&cycle); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if cycle.CycleNumber != 1 || len(cycle.Routine.Days) != 4 {
		t.Errorf("cycle mismatch: number=%d days=%d", cycle.CycleNumber, len(cycle.Routine.Days))
	}

	// The status check now reports an active cycle with a week modifier.
	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/cycle", "")
	if err := json.NewDecoder(rec.Body).Decode(&check); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if check.Status != gym.StatusActive {
		t.Errorf("status = %q, want active", check.Status)
	}
	if check.WeekModifier == nil || check.WeekModifier.Label != "Adaptación" {
		t.Errorf("week modifier mismatch: %+v", check.WeekModifier)
	}

	// Progress is available.
	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/cycle/progress", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var progress gym.CycleProgress
	if err := json.NewDecoder(rec.Body).Decode(&progress); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if progress.Total != 16 {
		t.Errorf("total sessions = %d, want 16", progress.Total)
	}

	// Continue extends the same cycle.
	rec = do(t, app, http.MethodPost, "/api/v1/users/u1/cycle/continue", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// The stored evaluation is readable.
	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/evaluation", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCycleContinueWithoutCycle(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	rec := do(t, app, http.MethodPost, "/api/v1/users/u1/cycle/continue", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCycleStartRejectsBadJSON(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	rec := do(t, app, http.MethodPost, "/api/v1/users/u1/cycle", `{"goal":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCycleStartIgnoresUnknownFields(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	// Clients may echo stored evaluation documents back with extra metadata.
	eval := `{"goal":"hipertrofia","experience":"intermedio","daysPerWeek":4,` +
		`"equipment":"gym_completo","sessionDuration":60,"priorityMuscles":[],` +
		`"injuryNotes":"","lastUpdated":"2026-08-01T10:00:00Z"}`
	rec := do(t, app, http.MethodPost, "/api/v1/users/u1/cycle", eval)
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestSessionEndpoints(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	session := `{"date":"2026-08-20T18:00:00Z","dayId":"UPPER_A","dayName":"Upper A","exercises":[],"totalVolume":900,"duration":3600,"completedExercises":[],"completed":true}`
	rec := do(t, app, http.MethodPost, "/api/v1/users/u1/sessions", session)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var sessions []gym.Session
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].TotalVolume != 900 {
		t.Errorf("session list mismatch: %+v", sessions)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/sessions?date=2026-08-20", "")
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("%d sessions on date, want 1", len(sessions))
	}

	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/sessions?month=2026-07", "")
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("%d sessions in empty month, want 0", len(sessions))
	}

	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/sessions?date=yesterday", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for bad date, want 400", rec.Code)
	}

	rec = do(t, app, http.MethodPost, "/api/v1/users/u1/sessions", `{"dayId":"UPPER_A"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for missing date, want 400", rec.Code)
	}
}

func TestStatsAndPREndpoints(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	rec := do(t, app, http.MethodPut, "/api/v1/users/u1/prs/bench_press", `{"weight":100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var record gym.PersonalRecord
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if record.WeightKg != 100 || record.Name != "Press de Banca con Barra" {
		t.Errorf("record mismatch: %+v", record)
	}

	rec = do(t, app, http.MethodPut, "/api/v1/users/u1/prs/no_such_exercise", `{"weight":100}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d for unknown exercise, want 404", rec.Code)
	}

	rec = do(t, app, http.MethodPut, "/api/v1/users/u1/prs/bench_press", `{"weight":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for negative weight, want 400", rec.Code)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/users/u1/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats gym.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if stats.AllTime.PRTotal != 100 {
		t.Errorf("PR total = %v, want 100", stats.AllTime.PRTotal)
	}
}

func TestExerciseEndpoints(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t)

	rec := do(t, app, http.MethodGet, "/api/v1/exercises", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list exerciseListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(list.Groups) != 7 {
		t.Errorf("%d groups, want 7", len(list.Groups))
	}
	if len(list.Exercises["pecho"]) != 7 {
		t.Errorf("%d chest exercises, want 7", len(list.Exercises["pecho"]))
	}

	rec = do(t, app, http.MethodGet, "/api/v1/exercises?group=biceps", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/exercises?group=cuello", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d for unknown group, want 404", rec.Code)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/exercises/bench_press", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var detail exerciseDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if detail.ID != "bench_press" {
		t.Errorf("exercise ID = %q, want bench_press", detail.ID)
	}
	if !strings.Contains(detail.TipsHTML, "<li>") {
		t.Errorf("tips not rendered as an HTML list: %q", detail.TipsHTML)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/exercises/no_such_exercise", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d for unknown exercise, want 404", rec.Code)
	}
}
