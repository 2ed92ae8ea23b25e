package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	pokemonService "pokedex/internal/application/pokemon"
	"pokedex/internal/domain/pokemon"
)

type PokemonHandler struct {
	service       pokemonService.Service
	maxUploadSize int64
}

func NewPokemonHandler(service pokemonService.Service, maxUploadSize int64) *PokemonHandler {
	return &PokemonHandler{
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// DeleteResponse wraps the removed entry with a confirmation message
type DeleteResponse struct {
	Message string           `json:"message"`
	Pokemon *pokemon.Pokemon `json:"pokemon"`
}

// Collection handles GET and POST /api/pokemons
func (h *PokemonHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles GET, PUT and DELETE /api/pokemons/{id}
func (h *PokemonHandler) ByID(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id cannot match any entry.
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/pokemons/"))
	if err != nil {
		SendError(w, "Pokémon not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.updateStats(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PokemonHandler) list(w http.ResponseWriter, r *http.Request) {
	pokemons, err := h.service.List()
	if err != nil {
		SendInternalError(w, "Failed to fetch pokémons", err)
		return
	}
	SendJSON(w, http.StatusOK, pokemons)
}

func (h *PokemonHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	p, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, pokemon.ErrNotFound) {
			SendError(w, "Pokémon not found", http.StatusNotFound)
			return
		}
		SendInternalError(w, "Failed to fetch pokémon", err)
		return
	}
	SendJSON(w, http.StatusOK, p)
}

// create expects a multipart form with a "pokemon" JSON field and an
// "image" file field.
func (h *PokemonHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		SendError(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	var p pokemon.Pokemon
	if err := json.Unmarshal([]byte(r.FormValue("pokemon")), &p); err != nil {
		SendError(w, "Invalid pokémon payload", http.StatusBadRequest)
		return
	}

	// Missing file is reported by the service as ErrMissingImage.
	var image *multipart.FileHeader
	if _, header, err := r.FormFile("image"); err == nil {
		image = header
	}

	created, err := h.service.Create(p, image)
	if err != nil {
		switch {
		case errors.Is(err, pokemon.ErrMissingImage):
			SendError(w, "Image is required", http.StatusBadRequest)
		case errors.Is(err, pokemon.ErrDuplicateID):
			SendError(w, "A pokémon with this id already exists", http.StatusBadRequest)
		case errors.Is(err, pokemon.ErrInvalidImageType):
			SendError(w, "Only JPG, JPEG and PNG images are allowed", http.StatusBadRequest)
		case errors.Is(err, pokemon.ErrNameRequired):
			SendError(w, "English name is required", http.StatusBadRequest)
		default:
			SendInternalError(w, "Failed to create pokémon", err)
		}
		return
	}

	SendJSON(w, http.StatusCreated, created)
}

func (h *PokemonHandler) updateStats(w http.ResponseWriter, r *http.Request, id int) {
	var patch pokemon.StatPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStats(id, patch)
	if err != nil {
		if errors.Is(err, pokemon.ErrNotFound) {
			SendError(w, "Pokémon not found", http.StatusNotFound)
			return
		}
		SendError(w, "Failed to update pokémon", http.StatusBadRequest)
		return
	}

	SendJSON(w, http.StatusOK, updated)
}

func (h *PokemonHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	deleted, err := h.service.Delete(id)
	if err != nil {
		if errors.Is(err, pokemon.ErrNotFound) {
			SendError(w, "Pokémon not found", http.StatusNotFound)
			return
		}
		SendInternalError(w, "Failed to delete pokémon", err)
		return
	}

	SendJSON(w, http.StatusOK, DeleteResponse{
		Message: "Pokémon deleted successfully",
		Pokemon: deleted,
	})
}
