package worker

import (
	"testing"
	"time"

	"gpsshowcase/handlers"
	"gpsshowcase/notify"
	"gpsshowcase/showcase"
)

func TestTickUpdatesClockAndPrunes(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)
	app := showcase.New(showcase.Options{Now: func() time.Time { return start }})
	s := handlers.NewSession(app, 0)
	app.Notify("Searching for: neon", notify.Info)

	tick(s, start.Add(time.Hour))

	s.Do(func(a *showcase.App) {
		if a.Clock() != "10:15 AM" {
			t.Fatalf("unexpected clock %q", a.Clock())
		}
		if len(a.Notifications()) != 0 {
			t.Fatal("expected expired toast pruned")
		}
	})
}

func TestStartClockWorkerStops(t *testing.T) {
	app := showcase.New(showcase.Options{})
	s := handlers.NewSession(app, 0)
	stop := make(chan struct{})

	StartClockWorker(s, time.Millisecond, stop)
	time.Sleep(5 * time.Millisecond)
	close(stop)

	// The session must still be usable after the worker exits.
	done := make(chan struct{})
	go func() {
		s.Do(func(a *showcase.App) { _ = a.Clock() })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session lock held after worker stopped")
	}
}
