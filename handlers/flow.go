package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gpsshowcase/account"
	"gpsshowcase/questionnaire"
	"gpsshowcase/showcase"
	"gpsshowcase/storage"
)

type userError struct {
	msg string
}

func (e userError) Error() string { return e.msg }

func badRequest(msg string) (int, error) { return http.StatusBadRequest, userError{msg} }

// CreateAccountHandler validates the sign-up form, stores the profile and
// schedules the move to the questionnaire.
func CreateAccountHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form account.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		act(w, s, func(a *showcase.App) (int, error) {
			err := a.CreateAccount(form)
			switch {
			case err == nil:
				s.scheduleAdvance()
				return http.StatusCreated, nil
			case errors.Is(err, storage.ErrUnavailable):
				return http.StatusServiceUnavailable, userError{"Storage unavailable"}
			default:
				return http.StatusUnprocessableEntity, userError{account.Message(err)}
			}
		})
	}
}

func StartQuestionnaireHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		act(w, s, func(a *showcase.App) (int, error) {
			a.StartQuestionnaire()
			return http.StatusOK, nil
		})
	}
}

func questionnaireStatus(err error) (int, error) {
	switch {
	case err == nil:
		return http.StatusOK, nil
	case errors.Is(err, questionnaire.ErrNotActive):
		return http.StatusConflict, userError{"Questionnaire is not in progress"}
	case errors.Is(err, questionnaire.ErrNoSelection):
		return http.StatusUnprocessableEntity, userError{"Please select an option"}
	case errors.Is(err, questionnaire.ErrUnknownOption):
		return http.StatusUnprocessableEntity, userError{"Unknown option"}
	default:
		return http.StatusInternalServerError, err
	}
}

// SelectOptionHandler records the tentative answer for the current question.
func SelectOptionHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Option string `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		act(w, s, func(a *showcase.App) (int, error) {
			return questionnaireStatus(a.SelectOption(body.Option))
		})
	}
}

func ConfirmHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		act(w, s, func(a *showcase.App) (int, error) {
			return questionnaireStatus(a.Confirm())
		})
	}
}

func BackHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		act(w, s, func(a *showcase.App) (int, error) {
			a.Back()
			return http.StatusOK, nil
		})
	}
}

// GoHomeHandler opens the dashboard from the thank-you page.
func GoHomeHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		act(w, s, func(a *showcase.App) (int, error) {
			a.GoHome()
			return http.StatusOK, nil
		})
	}
}
