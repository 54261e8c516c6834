package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gpsshowcase/carousel"
	"gpsshowcase/catalog"
	"gpsshowcase/showcase"
)

// SectionHandler switches the dashboard to an overview section or a category.
func SectionHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := r.PathValue("section")
		act(w, s, func(a *showcase.App) (int, error) {
			if err := a.SelectSection(section); err != nil {
				return http.StatusNotFound, userError{"Unknown section"}
			}
			return http.StatusOK, nil
		})
	}
}

// CommandSearchHandler runs the command-bar search and replaces the listing.
func CommandSearchHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		act(w, s, func(a *showcase.App) (int, error) {
			if _, ok := a.Search(body.Query); !ok {
				return badRequest("Query is required")
			}
			return http.StatusOK, nil
		})
	}
}

// StepHandler moves the hero carousel: prev, next or forward.
func StepHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		dir, ok := carousel.ParseDirection(body.Direction)
		if !ok {
			writeError(w, http.StatusBadRequest, "direction must be prev, next or forward")
			return
		}
		act(w, s, func(a *showcase.App) (int, error) {
			if err := a.Step(dir); errors.Is(err, carousel.ErrEmpty) {
				return http.StatusConflict, userError{"No restaurants to browse"}
			}
			return http.StatusOK, nil
		})
	}
}

// SelectRestaurantHandler picks a restaurant card by ID.
func SelectRestaurantHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid restaurant id")
			return
		}
		act(w, s, func(a *showcase.App) (int, error) {
			if _, err := a.SelectRestaurant(id); errors.Is(err, catalog.ErrNotFound) {
				return http.StatusNotFound, userError{"Restaurant not found"}
			}
			return http.StatusOK, nil
		})
	}
}

// HeroActionHandler runs favourite, reservation or route on the hero restaurant.
func HeroActionHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action := r.PathValue("action")
		act(w, s, func(a *showcase.App) (int, error) {
			_, err := a.HeroAction(action)
			switch {
			case errors.Is(err, showcase.ErrUnknownAction):
				return http.StatusNotFound, userError{"Unknown action"}
			case errors.Is(err, showcase.ErrNoRestaurant):
				return http.StatusConflict, userError{"No restaurant selected"}
			}
			return http.StatusOK, nil
		})
	}
}

func NotificationsHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp any
		s.Do(func(a *showcase.App) { resp = a.Notifications() })
		writeJSON(w, http.StatusOK, resp)
	}
}

// DismissNotificationHandler removes a toast early. Unknown IDs are fine.
func DismissNotificationHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s.Do(func(a *showcase.App) { a.DismissNotification(id) })
		w.WriteHeader(http.StatusNoContent)
	}
}
