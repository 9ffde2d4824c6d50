package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Sasha125588/pet-shelter/internal/config"
	"github.com/Sasha125588/pet-shelter/internal/database"
	postgresrepo "github.com/Sasha125588/pet-shelter/internal/repository/postgres"
	"github.com/Sasha125588/pet-shelter/internal/service"
	"github.com/Sasha125588/pet-shelter/internal/transport/http/handlers"
	"github.com/Sasha125588/pet-shelter/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	petRepo := postgresrepo.NewPetRepo(pool)
	adoptionRepo := postgresrepo.NewAdoptionRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := service.NewUserService(userRepo)
	petService := service.NewPetService(petRepo)
	adoptionService := service.NewAdoptionService(adoptionRepo, petRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.CookieDomain, cfg.RefreshTokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/auth/@me", auth(http.HandlerFunc(authHandler.Me)))

	// Users
	mux.Handle("GET /api/v1/users/@me", auth(http.HandlerFunc(userHandler.Me)))

	// Pets
	mux.HandleFunc("POST /api/v1/pets", petHandler.Create)
	mux.HandleFunc("GET /api/v1/pets", petHandler.List)
	mux.HandleFunc("GET /api/v1/pets/{id}", petHandler.Get)
	mux.HandleFunc("PATCH /api/v1/pets/{id}", petHandler.Update)
	mux.HandleFunc("DELETE /api/v1/pets/{id}", petHandler.Delete)

	// Adoptions
	mux.HandleFunc("POST /api/v1/adoptions", adoptionHandler.Create)
	mux.HandleFunc("GET /api/v1/adoptions", adoptionHandler.List)
	mux.HandleFunc("GET /api/v1/adoptions/by-pet/{petId}", adoptionHandler.ListByPet)
	mux.HandleFunc("GET /api/v1/adoptions/by-applicant/{applicantId}", adoptionHandler.ListByApplicant)
	mux.HandleFunc("GET /api/v1/adoptions/{id}", adoptionHandler.Get)
	mux.HandleFunc("PATCH /api/v1/adoptions/{id}/status", adoptionHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/v1/adoptions/{id}", adoptionHandler.Delete)

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
