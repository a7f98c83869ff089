package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routes wires up the API endpoints with their middleware.
func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	router.Use(app.recoverPanic)
	router.Use(app.logRequest)

	router.Get("/api/healthy", app.healthy)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/exercises", app.exerciseList)
		r.Get("/exercises/{exerciseID}", app.exerciseDetail)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/evaluation", app.evaluationGet)
			r.Get("/cycle", app.cycleStatus)
			r.Post("/cycle", app.cycleStart)
			r.Post("/cycle/renew", app.cycleRenew)
			r.Post("/cycle/continue", app.cycleContinue)
			r.Get("/cycle/progress", app.cycleProgress)
			r.Get("/sessions", app.sessionList)
			r.Post("/sessions", app.sessionCreate)
			r.Get("/stats", app.stats)
			r.Put("/prs/{exerciseID}", app.personalRecordUpdate)
		})
	})

	return router
}
