package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmorales/ciclofit/internal/gym"
)

// sessionList returns the user's workout history, newest first. The optional
// "date" (2006-01-02) and "month" (2006-01) query parameters narrow the range.
func (app *application) sessionList(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	ctx := r.Context()

	var (
		sessions []gym.Session
		err      error
	)
	switch {
	case r.URL.Query().Get("date") != "":
		var date time.Time
		if date, err = time.Parse("2006-01-02", r.URL.Query().Get("date")); err != nil {
			app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date parameter"})
			return
		}
		sessions, err = app.gymService.SessionsOn(ctx, userID, date)
	case r.URL.Query().Get("month") != "":
		var month time.Time
		if month, err = time.Parse("2006-01", r.URL.Query().Get("month")); err != nil {
			app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid month parameter"})
			return
		}
		sessions, err = app.gymService.SessionsInMonth(ctx, userID, month.Year(), month.Month())
	default:
		sessions, err = app.gymService.ListSessions(ctx, userID)
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if sessions == nil {
		sessions = []gym.Session{}
	}
	app.writeJSON(w, http.StatusOK, sessions)
}

func (app *application) sessionCreate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var session gym.Session
	if !app.readJSON(w, r, &session) {
		return
	}
	if session.Date.IsZero() {
		app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date is required"})
		return
	}

	if err := app.gymService.SaveSession(r.Context(), userID, session); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, session)
}
