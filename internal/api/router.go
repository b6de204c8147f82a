package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/inkwell-be/internal/api/handlers"
	"github.com/isdelr/inkwell-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(accountService services.AccountServiceProvider, frontendOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Requests come from exactly one known front-end origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(accountService)

	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	return r
}
