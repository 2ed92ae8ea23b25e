package repository

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	pokemonapp "pokedex/internal/application/pokemon"
)

// publicImagePrefix is the URL prefix the stored files are served from.
const publicImagePrefix = "/assets/pokemons"

type imageStore struct {
	baseDir string
}

// NewImageStore creates a filesystem-backed image store rooted under
// the assets directory.
func NewImageStore(assetsPath string) (pokemonapp.ImageStore, error) {
	dir := filepath.Join(assetsPath, "pokemons")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &imageStore{baseDir: dir}, nil
}

// Save writes the uploaded file to <assets>/pokemons/<id><ext>. A
// second upload with the same id overwrites the first.
func (s *imageStore) Save(id int, ext string, image *multipart.FileHeader) (string, error) {
	src, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, imageFilename(id, ext)))
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.PublicPath(id, ext), nil
}

func (s *imageStore) PublicPath(id int, ext string) string {
	return path.Join(publicImagePrefix, imageFilename(id, ext))
}

func imageFilename(id int, ext string) string {
	return fmt.Sprintf("%d%s", id, ext)
}
