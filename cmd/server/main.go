package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"gpsshowcase/catalog"
	"gpsshowcase/config"
	"gpsshowcase/database"
	"gpsshowcase/handlers"
	"gpsshowcase/showcase"
	"gpsshowcase/storage"
	"gpsshowcase/worker"
)

// main wires storage, the controller, the clock worker and the HTTP API.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	log.Printf("Loaded %d restaurants", cat.Len())

	app := showcase.New(showcase.Options{
		Store:           storage.NewSQLStore(db),
		Catalog:         cat,
		NotificationTTL: cfg.NotificationTTL,
	})
	session := handlers.NewSession(app, cfg.AdvanceDelay)

	stop := make(chan struct{})
	worker.StartClockWorker(session, cfg.ClockInterval, stop)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(handlers.Routes(session)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
