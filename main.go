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

	"github.com/isdelr/inkwell-be/internal/api"
	"github.com/isdelr/inkwell-be/internal/auth"
	"github.com/isdelr/inkwell-be/internal/config"
	"github.com/isdelr/inkwell-be/internal/database"
	"github.com/isdelr/inkwell-be/internal/logger"
	"github.com/isdelr/inkwell-be/internal/services"
	"github.com/isdelr/inkwell-be/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init()

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	accountStore := store.NewSQLiteStore(db)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret)
	accountService := services.NewAccountService(accountStore, tokenIssuer)

	// Set up router
	router := api.NewRouter(accountService, cfg.FrontendOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
