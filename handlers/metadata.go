package handlers

import (
	"net/http"

	"gpsshowcase/models"
	"gpsshowcase/questionnaire"
	"gpsshowcase/settings"
	"gpsshowcase/showcase"
)

// QuestionsHandler returns the fixed onboarding questions.
func QuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, questionnaire.Questions())
	}
}

type categoryView struct {
	Slug  models.Category `json:"slug"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

// CategoriesHandler lists every category with its restaurant count, for the
// sidebar filters.
func CategoriesHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]categoryView, 0, len(models.Categories))
		s.Do(func(a *showcase.App) {
			for _, c := range models.Categories {
				out = append(out, categoryView{Slug: c, Label: c.Label(), Count: len(a.Catalog().FilterByCategory(c))})
			}
		})
		writeJSON(w, http.StatusOK, out)
	}
}

// SettingNamesHandler lists the toggle names accepted by SetFlagHandler.
func SettingNamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, settings.Names)
	}
}
