// Command seed wipes the catalog and reloads it from the embedded data
// set. Meant for development setups; the delete and the inserts are two
// separate steps, so interrupting it leaves the catalog empty.
package main

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/infrastructure/config"
	"pokedex/internal/infrastructure/database"
	"pokedex/internal/infrastructure/repository"
)

//go:embed data/pokemons.json
var pokemonsJSON []byte

func main() {
	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var entries []pokemon.Pokemon
	if err := json.Unmarshal(pokemonsJSON, &entries); err != nil {
		slog.Error("failed to parse seed data", "error", err)
		os.Exit(1)
	}

	repo := repository.NewPokemonRepository(db)
	if err := repo.ReplaceAll(entries); err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	slog.Info("catalog seeded", "count", len(entries), "database", cfg.DatabasePath)
}
