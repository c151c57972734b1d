package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"cinevoxa/api"
	"cinevoxa/config"
	"cinevoxa/handlers"
	"cinevoxa/services/catalog"
	"cinevoxa/services/details"
	"cinevoxa/services/watchlist"
	"cinevoxa/tvmaze"
	"cinevoxa/utils"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	client := tvmaze.NewClient(cfg.UpstreamURL)

	store, err := watchlist.NewStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		log.Fatalf("[main] failed to open watchlist store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := catalog.NewSession(client)
	session.Start(ctx)

	resolver := details.NewResolver(client, session)

	router := utils.NewRouter()
	router.Use(api.RequestIDMiddleware())

	shows := handlers.NewShowsHandler(client)
	home := handlers.NewHomeHandler(session, store)
	detailsH := handlers.NewDetailsHandler(resolver)
	watchlistH := handlers.NewWatchlistHandler(store)

	// Gateway pass-through endpoints. /search registers before /{id} so the
	// literal path wins.
	router.HandleFunc("/api/shows", shows.ListShows).Methods(http.MethodGet)
	router.HandleFunc("/api/shows/search", shows.SearchShows).Methods(http.MethodGet)
	router.HandleFunc("/api/shows/{id}", shows.GetShow).Methods(http.MethodGet)
	router.HandleFunc("/api/shows/{id}/cast", shows.GetCast).Methods(http.MethodGet)

	// Session-backed application endpoints.
	router.HandleFunc("/api/home", home.GetHome).Methods(http.MethodGet)
	router.HandleFunc("/api/home/search", home.Search).Methods(http.MethodGet)
	router.HandleFunc("/api/details/{id}", detailsH.GetDetails).Methods(http.MethodGet)
	router.HandleFunc("/api/watchlist", watchlistH.List).Methods(http.MethodGet)
	router.HandleFunc("/api/watchlist/{id}/toggle", watchlistH.Toggle).Methods(http.MethodPost, http.MethodOptions)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("[main] backend running on http://localhost:%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("[main] shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
	session.Stop()
}
