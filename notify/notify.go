// Package notify keeps transient toast messages that expire after a fixed delay.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Severity picks the toast color.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// DefaultTTL is how long a toast stays on screen.
const DefaultTTL = 3 * time.Second

type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Emitter stacks toasts in arrival order. Time is injected so callers (tests,
// the terminal UI tick loop) decide when toasts expire.
type Emitter struct {
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
}

func NewEmitter(ttl time.Duration, now func() time.Time) *Emitter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Emitter{ttl: ttl, now: now}
}

func (e *Emitter) TTL() time.Duration { return e.ttl }

// Notify appends a toast; earlier toasts stay visible.
func (e *Emitter) Notify(message string, sev Severity) Toast {
	t := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  sev,
		ExpiresAt: e.now().Add(e.ttl),
	}
	e.toasts = append(e.toasts, t)
	return t
}

// Active returns the toasts that have not expired at now.
func (e *Emitter) Active(now time.Time) []Toast {
	out := []Toast{}
	for _, t := range e.toasts {
		if now.Before(t.ExpiresAt) {
			out = append(out, t)
		}
	}
	return out
}

// Prune drops expired toasts and reports how many went away.
func (e *Emitter) Prune(now time.Time) int {
	kept := e.toasts[:0]
	for _, t := range e.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	removed := len(e.toasts) - len(kept)
	e.toasts = kept
	return removed
}

// Dismiss removes one toast. Unknown IDs are ignored so a late timer for an
// already pruned toast is harmless.
func (e *Emitter) Dismiss(id string) bool {
	for i, t := range e.toasts {
		if t.ID == id {
			e.toasts = append(e.toasts[:i], e.toasts[i+1:]...)
			return true
		}
	}
	return false
}
