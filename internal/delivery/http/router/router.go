package router

import (
	"net/http"

	"pokedex/internal/application/auth"
	"pokedex/internal/delivery/http/handler"
	"pokedex/internal/delivery/http/middleware"
	"pokedex/internal/infrastructure/config"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth    *handler.AuthHandler
	Pokemon *handler.PokemonHandler
}

// Setup configures all routes for the application
func Setup(handlers Handlers, authService auth.Service, cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	cors := middleware.CORS(cfg.FrontendURL)
	authRequired := middleware.Auth(authService)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// Auth routes (public)
	mux.HandleFunc("/api/register", cors(handlers.Auth.Register))
	mux.HandleFunc("/api/login", cors(handlers.Auth.Login))

	// Catalog routes (protected)
	mux.HandleFunc("/api/pokemons", chain(handlers.Pokemon.Collection, cors, authRequired))
	mux.HandleFunc("/api/pokemons/", chain(handlers.Pokemon.ByID, cors, authRequired))

	// Uploaded images, served read-only
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsPath))))

	// Welcome route
	mux.HandleFunc("/", cors(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("Welcome to the Pokémon API"))
	}))

	return mux
}
