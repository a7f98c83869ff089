package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmorales/ciclofit/internal/docstore"
	"github.com/jmorales/ciclofit/internal/errors"
	"github.com/jmorales/ciclofit/internal/gym"
)

func (app *application) evaluationGet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	eval, err := app.gymService.GetEvaluation(r.Context(), userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			app.notFound(w, "evaluation not found")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, eval)
}

// cycleStatus reports the state of the user's current training cycle along
// with the week modifier the routine should apply today.
func (app *application) cycleStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	check, err := app.gymService.CheckCycleStatus(r.Context(), userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, check)
}

func (app *application) cycleStart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var eval gym.Evaluation
	if !app.readJSON(w, r, &eval) {
		return
	}

	cycle, err := app.gymService.StartNewCycle(r.Context(), userID, eval)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, cycle)
}

func (app *application) cycleRenew(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var eval gym.Evaluation
	if !app.readJSON(w, r, &eval) {
		return
	}

	cycle, err := app.gymService.RenewCycle(r.Context(), userID, eval)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, cycle)
}

func (app *application) cycleContinue(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	cycle, err := app.gymService.ContinueCycle(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gym.ErrNoCycle) {
			app.notFound(w, "no cycle to continue")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, cycle)
}

func (app *application) cycleProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	progress, err := app.gymService.GetCycleProgress(r.Context(), userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, progress)
}
