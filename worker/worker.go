package worker

import (
	"log"
	"time"

	"gpsshowcase/handlers"
	"gpsshowcase/showcase"
)

const DefaultInterval = 10 * time.Second

// StartClockWorker refreshes the dashboard clock and drops expired toasts on
// a fixed interval until stop is closed.
func StartClockWorker(s *handlers.Session, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	log.Printf("Starting clock worker (Interval: %v)", interval)
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				tick(s, now)
			case <-stop:
				return
			}
		}
	}()
}

func tick(s *handlers.Session, now time.Time) {
	s.Do(func(a *showcase.App) { a.Tick(now) })
}
