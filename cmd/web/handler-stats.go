package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmorales/ciclofit/internal/gym"
)

func (app *application) stats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	stats, err := app.gymService.GetStats(r.Context(), userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, stats)
}

type prUpdateRequest struct {
	WeightKg float64 `json:"weight"`
}

// personalRecordUpdate records a new best lift for an exercise. The previous
// best is appended to the record's history.
func (app *application) personalRecordUpdate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	exerciseID := chi.URLParam(r, "exerciseID")

	if _, ok := gym.FindExercise(exerciseID); !ok {
		app.notFound(w, "exercise not found")
		return
	}

	var req prUpdateRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.WeightKg <= 0 {
		app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "weight must be positive"})
		return
	}

	record, err := app.gymService.UpdatePR(r.Context(), userID, exerciseID, req.WeightKg)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, record)
}
