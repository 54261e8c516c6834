package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"gpsshowcase/showcase"
)

// Session serializes access to the single-owner controller. Request handlers,
// the sign-up timer and the background worker all go through Do.
type Session struct {
	mu           sync.Mutex
	app          *showcase.App
	advanceDelay time.Duration
}

func NewSession(app *showcase.App, advanceDelay time.Duration) *Session {
	if advanceDelay <= 0 {
		advanceDelay = showcase.AdvanceDelay
	}
	return &Session{app: app, advanceDelay: advanceDelay}
}

// Do runs fn with exclusive access to the controller.
func (s *Session) Do(fn func(a *showcase.App)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.app)
}

// scheduleAdvance moves from the landing page to the questionnaire after the
// sign-up delay, unless the user navigated away first.
func (s *Session) scheduleAdvance() {
	time.AfterFunc(s.advanceDelay, func() {
		s.Do(func(a *showcase.App) {
			if !a.AdvanceAfterSignup() {
				log.Println("Sign-up advance skipped: landing page no longer active")
			}
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Encode response error:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// act runs one user action under the session lock and answers with the
// resulting view state. A non-nil error is reported with the returned status
// and the action's user-facing message instead.
func act(w http.ResponseWriter, s *Session, fn func(a *showcase.App) (int, error)) {
	var (
		resp   StateResponse
		status int
		err    error
	)
	s.Do(func(a *showcase.App) {
		status, err = fn(a)
		resp = buildState(a)
	})
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	if status == 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}
