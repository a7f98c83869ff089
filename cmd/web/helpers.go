package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmorales/ciclofit/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(context.Background(), slog.LevelError, "encode response", slog.Any("error", err))
	}
}

// readJSON decodes the request body into dst. Unknown fields are ignored
// since stored evaluation documents carry extra metadata that clients may
// echo back.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (app *application) notFound(w http.ResponseWriter, msg string) {
	app.writeJSON(w, http.StatusNotFound, errorResponse{Error: msg})
}
