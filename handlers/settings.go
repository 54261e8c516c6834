package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gpsshowcase/models"
	"gpsshowcase/settings"
	"gpsshowcase/showcase"
)

func SettingsHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cur models.Settings
		s.Do(func(a *showcase.App) { cur = a.Settings() })
		writeJSON(w, http.StatusOK, cur)
	}
}

// SetFlagHandler updates one toggle: PUT /api/settings/{flag} {"value": true}.
func SetFlagHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Value *bool `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
			writeError(w, http.StatusBadRequest, "value must be a boolean")
			return
		}
		flag := r.PathValue("flag")
		act(w, s, func(a *showcase.App) (int, error) {
			if err := a.SetFlag(flag, *body.Value); errors.Is(err, settings.ErrUnknownFlag) {
				return http.StatusNotFound, userError{"Unknown setting"}
			}
			return http.StatusOK, nil
		})
	}
}
