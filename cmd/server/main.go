package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clueconspiracy"
	"clueconspiracy/internal/config"
	"clueconspiracy/internal/game"
	"clueconspiracy/internal/handlers"
	"clueconspiracy/internal/store"
)

func main() {
	// Load server configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	log.Printf("Loaded configuration: rooms seat %d-%d players, accusation window %s",
		cfg.Game.MinPlayersPerRoom, cfg.Game.MaxPlayersPerRoom, cfg.Game.FinalAccusationWindow)

	// Create TrapService with fail-fast initialization using embedded resources
	trapService, err := game.NewTrapService(clueconspiracy.TrapTilesYAML)
	if err != nil {
		log.Fatal("Failed to initialize trap service: ", err)
	}

	// Create store and handler with configuration
	s := store.NewMemoryStore(store.Options{
		CodeLength:       cfg.Server.RoomCodeLength,
		MaxPlayers:       cfg.Game.MaxPlayersPerRoom,
		AccusationWindow: cfg.Game.FinalAccusationWindow,
		RoomTimeout:      cfg.Server.RoomTimeout,
		Traps:            trapService,
	})
	h := handlers.New(s)

	// Reclaim abandoned rooms in the background
	janitorStop := make(chan struct{})
	s.StartJanitor(time.Minute, janitorStop)

	r := handlers.SetupRouter(h, cfg, nil)

	addr := cfg.Server.Host + ":" + cfg.Server.Port

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout, // 0 for SSE support
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	close(janitorStop)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server gracefully stopped")
}
