package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jmorales/ciclofit/internal/gym"
	"github.com/yuin/goldmark"
)

type exerciseListResponse struct {
	Groups    []string                  `json:"groups"`
	Exercises map[string][]gym.Exercise `json:"exercises"`
}

// exerciseList returns the exercise catalog grouped by muscle group. The
// optional "group" query parameter narrows the response to a single group.
func (app *application) exerciseList(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("group"); group != "" {
		exercises := gym.ExercisesByGroup(group)
		if len(exercises) == 0 {
			app.notFound(w, "unknown muscle group")
			return
		}
		app.writeJSON(w, http.StatusOK, exercises)
		return
	}

	groups := gym.MuscleGroups()
	byGroup := make(map[string][]gym.Exercise, len(groups))
	for _, group := range groups {
		byGroup[group] = gym.ExercisesByGroup(group)
	}
	app.writeJSON(w, http.StatusOK, exerciseListResponse{Groups: groups, Exercises: byGroup})
}

type exerciseDetailResponse struct {
	gym.Exercise
	TipsHTML string `json:"tipsHtml"`
}

// exerciseDetail returns a single catalog entry with its technique tips
// rendered from Markdown to an HTML fragment.
func (app *application) exerciseDetail(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "exerciseID")

	exercise, ok := gym.FindExercise(exerciseID)
	if !ok {
		app.notFound(w, "exercise not found")
		return
	}

	var markdown strings.Builder
	for _, tip := range exercise.Tips {
		markdown.WriteString("- ")
		markdown.WriteString(tip)
		markdown.WriteString("\n")
	}
	var html strings.Builder
	if err := goldmark.Convert([]byte(markdown.String()), &html); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, exerciseDetailResponse{
		Exercise: exercise,
		TipsHTML: html.String(),
	})
}
