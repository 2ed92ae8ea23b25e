package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	authService "pokedex/internal/application/auth"
	pokemonService "pokedex/internal/application/pokemon"
	"pokedex/internal/delivery/http/handler"
	"pokedex/internal/delivery/http/router"
	"pokedex/internal/infrastructure/config"
	"pokedex/internal/infrastructure/database"
	"pokedex/internal/infrastructure/repository"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	pokemonRepo := repository.NewPokemonRepository(db)
	imageStore, err := repository.NewImageStore(cfg.AssetsPath)
	if err != nil {
		slog.Error("failed to initialize image store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	authSvc := authService.NewService(userRepo, cfg.JWTSecret)
	pokemonSvc := pokemonService.NewService(pokemonRepo, imageStore)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Pokemon: handler.NewPokemonHandler(pokemonSvc, cfg.MaxUploadSize),
	}

	// Setup routes
	mux := router.Setup(handlers, authSvc, cfg)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("pokédex server started",
		"addr", addr,
		"database", cfg.DatabasePath,
		"assets", cfg.AssetsPath,
	)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
